// Package netplay links two peers for a versus session: a TCP stream
// for frames that must arrive and a connected UDP socket for position
// reports where only the latest matters.
package netplay

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/game"
)

// Every message on either socket is one fixed-size frame: a kind byte
// followed by a zero-padded payload. Fixed framing keeps the stream
// self-aligned without a length prefix.
const (
	FrameLen   = 64
	PayloadLen = FrameLen - 1
)

// Stream frame kinds.
const (
	kindPing byte = iota
	kindPong
	kindSeeds
	kindHold
	kindPlace
)

// Datagram frame kinds.
const (
	kindPos byte = iota
)

var (
	// ErrShortFrame reports a frame smaller than the fixed size.
	ErrShortFrame = errors.New("netplay: truncated frame")
	// ErrBadFrame reports a frame kind outside the protocol.
	ErrBadFrame = errors.New("netplay: unknown frame kind")
)

// Message is a decoded peer message: one of Ping, Pong, Seeds, Hold,
// Place or Pos.
type Message interface {
	message()
}

// Ping carries the sender's clock so the peer can echo it back.
type Ping struct {
	SentAt int64 // unix milliseconds
}

// Pong echoes a ping's timestamp; now minus SentAt is the round trip.
type Pong struct {
	SentAt int64
}

// Seeds is the host's opening frame: one bag seed per player. The
// host plays HostSeed, the joiner plays GuestSeed, and each mirrors
// the opponent from the other seed.
type Seeds struct {
	HostSeed  uint64
	GuestSeed uint64
}

// Hold reports that the peer swapped its hold slot.
type Hold struct{}

// Place commits the peer's falling piece at the given pose.
type Place struct {
	Geometry game.Geometry
}

// Pos is the datagram position report for the peer's falling piece.
type Pos struct {
	Geometry game.Geometry
}

func (Ping) message()  {}
func (Pong) message()  {}
func (Seeds) message() {}
func (Hold) message()  {}
func (Place) message() {}
func (Pos) message()   {}

// encodeStream serializes a reliable message into one frame.
func encodeStream(m Message) ([]byte, error) {
	frame := make([]byte, 1, FrameLen)
	switch v := m.(type) {
	case Ping:
		frame[0] = kindPing
		frame = binary.LittleEndian.AppendUint64(frame, uint64(v.SentAt))
	case Pong:
		frame[0] = kindPong
		frame = binary.LittleEndian.AppendUint64(frame, uint64(v.SentAt))
	case Seeds:
		frame[0] = kindSeeds
		frame = binary.LittleEndian.AppendUint64(frame, v.HostSeed)
		frame = binary.LittleEndian.AppendUint64(frame, v.GuestSeed)
	case Hold:
		frame[0] = kindHold
	case Place:
		frame[0] = kindPlace
		frame = v.Geometry.AppendBinary(frame)
	default:
		return nil, fmt.Errorf("%T on the stream: %w", m, ErrBadFrame)
	}
	return frame[:FrameLen], nil
}

// decodeStream parses one reliable frame.
func decodeStream(frame []byte) (Message, error) {
	if len(frame) < FrameLen {
		return nil, fmt.Errorf("stream frame of %d bytes: %w", len(frame), ErrShortFrame)
	}
	payload := frame[1:FrameLen]
	switch frame[0] {
	case kindPing:
		return Ping{SentAt: int64(binary.LittleEndian.Uint64(payload))}, nil
	case kindPong:
		return Pong{SentAt: int64(binary.LittleEndian.Uint64(payload))}, nil
	case kindSeeds:
		return Seeds{
			HostSeed:  binary.LittleEndian.Uint64(payload[:8]),
			GuestSeed: binary.LittleEndian.Uint64(payload[8:16]),
		}, nil
	case kindHold:
		return Hold{}, nil
	case kindPlace:
		g, err := game.DecodeGeometry(payload)
		if err != nil {
			return nil, fmt.Errorf("place frame: %w", err)
		}
		return Place{Geometry: g}, nil
	}
	return nil, fmt.Errorf("stream kind %d: %w", frame[0], ErrBadFrame)
}

// encodeDatagram serializes a position report into one frame.
func encodeDatagram(m Message) ([]byte, error) {
	v, ok := m.(Pos)
	if !ok {
		return nil, fmt.Errorf("%T on the datagram socket: %w", m, ErrBadFrame)
	}
	frame := make([]byte, 1, FrameLen)
	frame[0] = kindPos
	frame = v.Geometry.AppendBinary(frame)
	return frame[:FrameLen], nil
}

// decodeDatagram parses one datagram frame.
func decodeDatagram(frame []byte) (Message, error) {
	if len(frame) < FrameLen {
		return nil, fmt.Errorf("datagram of %d bytes: %w", len(frame), ErrShortFrame)
	}
	payload := frame[1:FrameLen]
	switch frame[0] {
	case kindPos:
		g, err := game.DecodeGeometry(payload)
		if err != nil {
			return nil, fmt.Errorf("position frame: %w", err)
		}
		return Pos{Geometry: g}, nil
	}
	return nil, fmt.Errorf("datagram kind %d: %w", frame[0], ErrBadFrame)
}
