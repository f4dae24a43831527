package commands

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/oy3o/compact"
	"github.com/oy3o/compact/internal/layout"
)

// NewEncodeCommand returns a cli.Command for "compact encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode values following a layout and print them as hex.",
		UsageText: `compact encode --layout u8,bool,string 5 true ok`,
		Flags:     []cli.Flag{layoutFlag()},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		l, err := layout.Parse(cmd.String("layout"))
		if err != nil {
			return err
		}

		e := compact.NewEncoder()
		if err := l.Encode(e, cmd.Args().Slice()); err != nil {
			return err
		}
		data, err := e.End()
		if err != nil {
			return err
		}

		layout.Logger().Debug("encoded", zap.Stringer("layout", l), zap.Int("bytes", len(data)))
		_, err = fmt.Fprintln(cmd.Root().Writer, hex.EncodeToString(data))
		return err
	}

	return &cmd
}

// NewDecodeCommand returns a cli.Command for "compact decode".
func NewDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a hex message following a layout.",
		UsageText: `compact decode --layout u8,bool,string 0501026f6b`,
		Flags: []cli.Flag{
			layoutFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the fields as a JSON array",
			},
			&cli.BoolFlag{
				Name:  "allow-trailing",
				Usage: "do not fail when bytes remain after the last field",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		l, err := layout.Parse(cmd.String("layout"))
		if err != nil {
			return err
		}
		input := strings.Join(cmd.Args().Slice(), "")
		if input == "" {
			return errors.New(cmd.UsageText)
		}
		data, err := hex.DecodeString(input)
		if err != nil {
			return errors.Wrap(err, "invalid hex input")
		}

		d := compact.NewDecoder(data)
		fields, err := l.Decode(d)
		if err != nil {
			return err
		}
		if !d.End() && !cmd.Bool("allow-trailing") {
			return errors.Wrapf(compact.ErrTrailingData, "%d bytes left", d.Remaining())
		}

		w := cmd.Root().Writer
		if cmd.Bool("json") {
			enc := json.NewEncoder(w)
			return enc.Encode(fields)
		}
		for i, f := range fields {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, f.Type, f.Text()); err != nil {
				return err
			}
		}
		return nil
	}

	return &cmd
}

// NewSizeCommand returns a cli.Command for "compact size".
func NewSizeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "size",
		Usage:     "Print the variable-length size encoding of a number.",
		UsageText: `compact size 16384`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		arg := cmd.Args().First()
		if arg == "" {
			return errors.New(cmd.UsageText)
		}
		n, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return err
		}
		data, err := compact.NewEncoder(4).Size(int(n)).End()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.Root().Writer, "%s\t%d bytes\n", hex.EncodeToString(data), len(data))
		return err
	}

	return &cmd
}
