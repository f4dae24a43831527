package commands

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/oy3o/compact/internal/layout"
)

// NewApp creates the compact CLI. Command output goes to w.
func NewApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "compact",
		Usage:  "Encode and inspect compact binary messages",
		Writer: w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log decoding steps to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if !cmd.Bool("verbose") {
				return ctx, nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return ctx, err
			}
			layout.SetLogger(logger)
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			_ = layout.Logger().Sync()
			return nil
		},
		Commands: []*cli.Command{
			NewEncodeCommand(),
			NewDecodeCommand(),
			NewSizeCommand(),
		},
	}
}

// layoutFlag is shared by encode and decode.
func layoutFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "layout",
		Aliases:  []string{"l"},
		Usage:    "comma-separated field types: u8,u16,u32,i8,i16,i32,f32,f64,bool,size,bytes,string",
		Required: true,
	}
}
