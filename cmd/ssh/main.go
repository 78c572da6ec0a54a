package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tomz197/electroblast/internal/audio"
	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/draw"
	"github.com/tomz197/electroblast/internal/loop"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", zap.Error(workErr))
	}
	logger.Info("ssh config",
		zap.String("host", cfg.SSH.Host),
		zap.String("port", cfg.SSH.Port),
		zap.String("host_key", cfg.SSH.HostKey),
		zap.String("working_dir", workingDir),
	)

	games := &gameHandler{cfg: cfg, log: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", zap.String("addr", net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down server", zap.Int64("sessions", games.active.Load()))

	// Ends every running game; sessions close once their loop returns.
	games.shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	cfg *config.Config
	log *zap.Logger

	active atomic.Int64
	nextID atomic.Int64

	mu      sync.Mutex
	cancels map[int64]context.CancelFunc
}

func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := g.nextID.Add(1)
		log := g.log.With(zap.String("user", sess.User()), zap.Int64("session_id", id))
		log.Info("new game session",
			zap.String("terminal", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height),
		)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		g.track(id, cancel)
		defer g.untrack(id)

		bell := audio.NewBell(sess)
		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			Rules:        g.cfg.Rules,
			TermSizeFunc: sizeTracker.getSize,
			Audio:        bell,
			Logger:       log,
			Session:      sess.User(),
			IdleWarn:     g.cfg.SSH.IdleWarn(),
			IdleTimeout:  g.cfg.SSH.IdleTimeout(),
		})
		if err != nil {
			log.Warn("game error", zap.Error(err))
		}
		if err := bell.Err(); err != nil {
			log.Debug("bell disabled", zap.Error(err))
		}

		next(sess)
	}
}

func (g *gameHandler) track(id int64, cancel context.CancelFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancels == nil {
		g.cancels = make(map[int64]context.CancelFunc)
	}
	g.cancels[id] = cancel
	g.active.Add(1)
}

func (g *gameHandler) untrack(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cancel, ok := g.cancels[id]; ok {
		cancel()
		delete(g.cancels, id)
		g.active.Add(-1)
	}
}

// shutdown cancels every running game.
func (g *gameHandler) shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, cancel := range g.cancels {
		cancel()
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
