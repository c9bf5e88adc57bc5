package netplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/game"
)

// PingInterval is how often a session measures the round trip.
const PingInterval = 2 * time.Second

// joinRetryInterval paces reconnect attempts while the host is not
// up yet.
const joinRetryInterval = time.Second

// Conn is an established peer link. Reliable frames arrive on
// Reliable in order; position reports arrive on Positions with stale
// ones already dropped.
type Conn struct {
	logger *log.Logger

	tcp net.Conn
	udp net.Conn

	wmu sync.Mutex // one frame at a time on the stream

	reliable chan Message
	pos      chan game.Geometry
	errs     chan error

	done     chan struct{}
	doneOnce sync.Once
}

// Listener awaits the single opposing peer on the host side.
type Listener struct {
	ln     net.Listener
	logger *log.Logger
}

// Listen binds the host socket. The returned listener accepts exactly
// one peer.
func Listen(ctx context.Context, bind string, logger *log.Logger) (*Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", bind)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", bind, err)
	}
	logger.Info("waiting for opponent", "addr", ln.Addr())
	return &Listener{ln: ln, logger: logger}, nil
}

// Addr reports the bound address, useful when bind asked for port 0.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Accept blocks until a peer connects, then opens the datagram side
// on the same address tuple. The listener is closed either way: a
// session has exactly two players.
func (l *Listener) Accept(ctx context.Context) (*Conn, error) {
	defer l.ln.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			l.ln.Close()
		case <-stop:
		}
	}()

	tcp, err := l.ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("accept: %w", err)
	}
	l.logger.Info("opponent connected", "addr", tcp.RemoteAddr())

	udp, err := bindDatagram(ctx, l.ln.Addr(), tcp.RemoteAddr())
	if err != nil {
		tcp.Close()
		return nil, err
	}
	return NewConn(tcp, udp, l.logger), nil
}

// Close abandons the wait for a peer.
func (l *Listener) Close() error {
	return l.ln.Close()
}

// Join dials the host, retrying once a second until the host is up or
// the context ends.
func Join(ctx context.Context, addr string, logger *log.Logger) (*Conn, error) {
	var d net.Dialer
	for {
		tcp, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			logger.Info("connected", "addr", tcp.RemoteAddr())
			udp, err := bindDatagram(ctx, tcp.LocalAddr(), tcp.RemoteAddr())
			if err != nil {
				tcp.Close()
				return nil, err
			}
			return NewConn(tcp, udp, logger), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Debug("host not up yet", "addr", addr, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(joinRetryInterval):
		}
	}
}

// bindDatagram opens the UDP side of the link on the same local and
// remote ports as the established stream, so each peer knows where
// the other's position reports come from.
func bindDatagram(ctx context.Context, local, remote net.Addr) (net.Conn, error) {
	ltcp, ok := local.(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("datagram bind: local %v is not TCP", local)
	}
	rtcp, ok := remote.(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("datagram bind: remote %v is not TCP", remote)
	}
	d := net.Dialer{
		LocalAddr: &net.UDPAddr{IP: ltcp.IP, Port: ltcp.Port},
	}
	udp, err := d.DialContext(ctx, "udp", (&net.UDPAddr{IP: rtcp.IP, Port: rtcp.Port}).String())
	if err != nil {
		return nil, fmt.Errorf("datagram bind: %w", err)
	}
	return udp, nil
}

// NewConn wraps an already-established socket pair. Listen and Join
// are the usual ways in; this is the seam for piped transports.
func NewConn(tcp, udp net.Conn, logger *log.Logger) *Conn {
	c := &Conn{
		logger:   logger,
		tcp:      tcp,
		udp:      udp,
		reliable: make(chan Message, 16),
		pos:      make(chan game.Geometry, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	go c.pumpStream()
	go c.pumpDatagrams()
	return c
}

// Reliable delivers stream messages in arrival order.
func (c *Conn) Reliable() <-chan Message {
	return c.reliable
}

// Positions delivers the peer's latest falling piece pose. Stale
// reports are replaced, never queued.
func (c *Conn) Positions() <-chan game.Geometry {
	return c.pos
}

// Err reports the first fatal connection error.
func (c *Conn) Err() <-chan error {
	return c.errs
}

// RemoteAddr names the peer for display.
func (c *Conn) RemoteAddr() string {
	return c.tcp.RemoteAddr().String()
}

// AwaitSeeds blocks until the host's seed frame arrives, discarding
// whatever else beats it onto the stream.
func (c *Conn) AwaitSeeds(ctx context.Context) (Seeds, error) {
	for {
		select {
		case m := <-c.reliable:
			if s, ok := m.(Seeds); ok {
				return s, nil
			}
			c.logger.Debug("discarding pre-seed frame", "msg", fmt.Sprintf("%T", m))
		case err := <-c.errs:
			return Seeds{}, err
		case <-ctx.Done():
			return Seeds{}, ctx.Err()
		}
	}
}

// SendPing stamps the current clock onto the stream.
func (c *Conn) SendPing() error {
	return c.writeStream(Ping{SentAt: time.Now().UnixMilli()})
}

// SendPong echoes a ping back to its sender.
func (c *Conn) SendPong(p Ping) error {
	return c.writeStream(Pong{SentAt: p.SentAt})
}

// SendSeeds hands the joiner both bag seeds. Host side only.
func (c *Conn) SendSeeds(s Seeds) error {
	return c.writeStream(s)
}

// SendHold reports a hold swap.
func (c *Conn) SendHold() error {
	return c.writeStream(Hold{})
}

// SendPlace commits the local piece at the given pose on the peer's
// mirror.
func (c *Conn) SendPlace(g game.Geometry) error {
	return c.writeStream(Place{Geometry: g})
}

// SendPos reports the local falling piece's pose. Losing one of these
// is fine; the next report supersedes it.
func (c *Conn) SendPos(g game.Geometry) error {
	frame, err := encodeDatagram(Pos{Geometry: g})
	if err != nil {
		return err
	}
	if _, err := c.udp.Write(frame); err != nil {
		return fmt.Errorf("datagram write: %w", err)
	}
	return nil
}

func (c *Conn) writeStream(m Message) error {
	frame, err := encodeStream(m)
	if err != nil {
		return err
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if _, err := c.tcp.Write(frame); err != nil {
		return fmt.Errorf("stream write: %w", err)
	}
	return nil
}

// Close tears the link down. Safe to call more than once.
func (c *Conn) Close() error {
	c.doneOnce.Do(func() {
		close(c.done)
		c.tcp.Close()
		c.udp.Close()
	})
	return nil
}

// pumpStream reads reliable frames until the stream dies. Any read or
// decode failure is fatal: the stream carries state the session
// cannot resynchronize without.
func (c *Conn) pumpStream() {
	buf := make([]byte, FrameLen)
	for {
		if _, err := io.ReadFull(c.tcp, buf); err != nil {
			c.fail(fmt.Errorf("stream read: %w", err))
			return
		}
		m, err := decodeStream(buf)
		if err != nil {
			c.fail(err)
			return
		}
		select {
		case c.reliable <- m:
		case <-c.done:
			return
		}
	}
}

// pumpDatagrams reads position reports until the socket closes.
// Malformed or errored datagrams are dropped, not fatal: the socket
// is lossy by contract and the stream decides when the link is dead.
func (c *Conn) pumpDatagrams() {
	buf := make([]byte, FrameLen)
	for {
		n, err := c.udp.Read(buf)
		if err != nil {
			select {
			case <-c.done:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			c.logger.Debug("datagram read", "err", err)
			continue
		}
		m, err := decodeDatagram(buf[:n])
		if err != nil {
			c.logger.Debug("datagram dropped", "err", err)
			continue
		}
		p, ok := m.(Pos)
		if !ok {
			continue
		}
		select {
		case c.pos <- p.Geometry:
		default:
			// Replace the stale report with this one.
			select {
			case <-c.pos:
			default:
			}
			select {
			case c.pos <- p.Geometry:
			default:
			}
		}
	}
}

// fail reports the first fatal error unless the conn was closed on
// purpose.
func (c *Conn) fail(err error) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.errs <- err:
	default:
	}
}
