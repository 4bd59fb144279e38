// Qrjelly is a QR code generator in a frameless, rounded rio window.
//
// Usage:
//
//	qrjelly [run]                     open the window
//	qrjelly encode TEXT -o FILE       write a QR code image
//	qrjelly print TEXT                draw a QR code in the terminal
//	qrjelly version
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/qrjelly/chrome"
	"github.com/elizafairlady/qrjelly/config"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/panel"
	"github.com/elizafairlady/qrjelly/prefs"
	"github.com/elizafairlady/qrjelly/qr"
	"github.com/elizafairlady/qrjelly/theme"
)

var version = "v0.1.0"

const title = "QR Jelly"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, envFile string
	load := func() (*config.Config, *slog.Logger, error) {
		cfg, err := config.Load(configPath, envFile)
		if err != nil {
			return nil, nil, err
		}
		return cfg, newLogger(cfg), nil
	}

	root := &cobra.Command{
		Use:          "qrjelly",
		Short:        "Generate QR codes",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runGUI(cfg, log)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to .env file")

	// --- run command ---------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Open the QR Jelly window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runGUI(cfg, log)
		},
	})

	// --- encode command ------------------------------------------------------
	var out, fg, bg string
	encodeCmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Write TEXT as a QR code image",
		Long: "Write TEXT as a QR code image. The format follows the output\n" +
			"file's extension: .png, .jpg, .gif, .bmp, .tif or .bit.\n" +
			"Colors default to the saved preferences.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runEncode(cfg, log, args[0], out, fg, bg)
		},
	}
	encodeCmd.Flags().StringVarP(&out, "output", "o", "", "Output file")
	encodeCmd.Flags().StringVar(&fg, "fg", "", "Foreground color (#rrggbb)")
	encodeCmd.Flags().StringVar(&bg, "bg", "", "Background color (#rrggbb)")
	encodeCmd.MarkFlagRequired("output")
	root.AddCommand(encodeCmd)

	// --- print command -------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "print TEXT",
		Short: "Draw TEXT as a QR code in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			p, err := cfg.Params()
			if err != nil {
				return err
			}
			return qr.Print(cmd.OutOrStdout(), args[0], p.Level)
		},
	})

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrjelly %s\n", version)
		},
	})
	return root
}

func newLogger(cfg *config.Config) *slog.Logger {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	gg.SetLogger(log)
	return log
}

// runEncode writes text to out without opening a window.
func runEncode(cfg *config.Config, log *slog.Logger, text, out, fg, bg string) error {
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	colors := prefs.Load(cfg.PrefsPath, log)
	if fg != "" {
		if colors.Foreground, err = theme.Parse(fg); err != nil {
			return fmt.Errorf("--fg: %w", err)
		}
	}
	if bg != "" {
		if colors.Background, err = theme.Parse(bg); err != nil {
			return fmt.Errorf("--bg: %w", err)
		}
	}
	img, err := qr.NewEncoder(p).Encode(text, colors.Foreground, colors.Background)
	if err != nil {
		return err
	}
	if err := qr.WriteFile(out, img); err != nil {
		return err
	}
	log.Info("wrote QR code", "path", out, "size", img.Bounds().Dx())
	return nil
}

// runGUI opens the window and runs until it is closed.
func runGUI(cfg *config.Config, log *slog.Logger) error {
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	a, err := libui.Open(title, log)
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer a.Close()
	a.Theme = cfg.Theme()
	if a.Fonts, err = libui.LoadFonts(a.Theme.FontSize, a.Theme.TitleSize); err != nil {
		log.Warn("fonts unavailable, text will not be drawn", "err", err)
	}

	store := prefs.Open(cfg.PrefsPath, a.Bus, log)
	w := prefs.Watch(store.Path(), func() {
		a.Do(func(*libui.App) { store.Reload() })
	}, log)
	defer w.Close()

	pn := panel.New(a, store, qr.NewEncoder(p))
	defer pn.Close()

	icon, err := chrome.LoadIcon(cfg.IconPath)
	if err != nil {
		log.Debug("no window icon", "path", cfg.IconPath, "err", err)
	}
	f := chrome.New(title, icon)
	f.SetContent(pn)

	if err := a.Window.Resize(cfg.Width, cfg.Height); err != nil {
		log.Warn("resize window", "err", err)
	}
	f.Show(a)
	log.Info("started", "prefs", store.Path(), "backend", p.Backend, "level", p.Level)
	return a.Run(f)
}
