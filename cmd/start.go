package cmd

import (
	"fmt"
	"net"
	"os"

	"hotserve/core/browser"
	"hotserve/core/config"
	"hotserve/core/loader"
	"hotserve/core/logger"
	"hotserve/core/middleware/access"
	"hotserve/core/middleware/rayid"
	"hotserve/core/server"
	"hotserve/feature/reload"
	"hotserve/feature/static"

	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

// runServer watches the source directory and serves it until the command's
// context is cancelled.
func runServer(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(args) > 0 && !cmd.Flags().Changed("dir") {
		cfg.Server.Dir = args[0]
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	root, err := cfg.Server.SourceRoot()
	if err != nil {
		return err
	}

	// 3. Start watching before serving so no edit is missed
	hot, err := reload.NewService(root, logg)
	if err != nil {
		return fmt.Errorf("failed to watch source directory: %w", err)
	}
	defer hot.Close()

	// 4. Initialize Fiber App
	app := server.NewApp(logg)

	// Access line first so it also records recovered panics
	app.Use(access.New(logger.NewAccess(zapcore.Lock(os.Stdout))))
	app.Use(recover.New())
	app.Use(rayid.New())

	// 5. Register Features. /hot must precede the static wildcard.
	mgr := loader.NewManager()
	mgr.Register(reload.NewFeature(hot))
	mgr.Register(static.NewFeature(root, reload.Snippet, logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	// 6. Bind before announcing so a busy port fails fast
	ln, err := server.Listen(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Address(), err)
	}
	bound := cfg.Server
	bound.Port = uint16(ln.Addr().(*net.TCPAddr).Port)
	url := bound.URL()

	if cfg.Server.Open {
		go func() {
			if err := browser.Open(url); err != nil {
				logg.Warn("Failed to open browser", zap.String("url", url), zap.Error(err))
			}
		}()
	}

	logg.Debug("Serving directory", zap.String("root", root), zap.String("url", url))
	fmt.Fprintf(cmd.OutOrStdout(), "Online at %s\n", url)

	// 7. Run until interrupted
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.Go(func() error {
		return hot.Run(ctx)
	})
	eg.Go(func() error {
		return app.Listener(ln)
	})
	eg.Go(func() error {
		<-ctx.Done()
		logg.Info("Shutting down server...")
		return app.Shutdown()
	})
	return eg.Wait()
}
