// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"cogentcore.org/scene2d/base/logx"
	"cogentcore.org/scene2d/config"
	"github.com/spf13/cobra"
)

// flags are the options shared by every command.
type flags struct {
	configPath string
	vv, v, q   bool

	cfg *config.Config
}

// setup loads the configuration and installs the logger.
func (f *flags) setup(cmd *cobra.Command) error {
	cfg, err := config.Open(f.configPath)
	if err != nil {
		return err
	}
	f.cfg = cfg
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if f.vv || f.v || f.q {
		level = logx.LevelFromFlags(f.vv, f.v, f.q)
	}
	logx.SetDefault(cmd.ErrOrStderr(), level)
	return nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "scene2d",
		Short:        "Lay out 2D scene documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return f.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.config/scene2d/config.toml)")
	pf.BoolVar(&f.vv, "vv", false, "debug output")
	pf.BoolVarP(&f.v, "verbose", "v", false, "informational output")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only show errors")

	root.AddCommand(
		&cobra.Command{
			Use:   "layout <scene>",
			Short: "Print the laid out scene tree",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Layout(f.cfg, args[0], cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "hit <scene> <x> <y>",
			Short: "Print the entities under a point, topmost first",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := strconv.ParseFloat(args[1], 32)
				if err != nil {
					return fmt.Errorf("hit: x: %w", err)
				}
				y, err := strconv.ParseFloat(args[2], 32)
				if err != nil {
					return fmt.Errorf("hit: y: %w", err)
				}
				return Hit(f.cfg, args[0], float32(x), float32(y), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "watch <scene>",
			Short: "Print the scene tree again whenever the document changes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Watch(cmd.Context(), f.cfg, args[0], cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "view <scene>",
			Short: "Draw the scene in the terminal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return View(f.cfg, args[0])
			},
		},
		newServeCmd(f),
	)
	return root
}

func newServeCmd(f *flags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <scene>",
		Short: "Serve snapshots of the scene to the inspector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				f.cfg.Inspector = addr
			}
			return Serve(cmd.Context(), f.cfg, args[0])
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
