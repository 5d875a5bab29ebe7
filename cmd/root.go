package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/termsweep/config"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/term"
)

var (
	errPartialDimensions    = errors.New("--width, --height and --mines must be given together")
	errDifficultyDimensions = errors.New("--difficulty cannot be combined with --width, --height or --mines")
)

type options struct {
	difficulty              string
	width, height, numMines int

	seed     int64
	director string

	configPath string
	logLevel   string
	logFile    string
}

var rootCmd = newRootCmd(&options{})

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termsweep",
		Short: "Play Minesweeper in the terminal",
		Long: `termsweep is a Minesweeper game played in the terminal.

Pick a preset difficulty
	termsweep -d medium

Or give the board dimensions and number of mines
	termsweep -w 20 -h 10 -m 30

Move with h/j/k/l or the arrow keys, reveal with space or f, and cycle a
cell's mark with d. Press r to restart a finished game and q to quit.
`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Flags())
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	cmd.Flags().VarP(newDifficultyValue("easy", &opts.difficulty), "difficulty", "d",
		fmt.Sprintf("Preset board (%s): easy is 8x8 with 10 mines, medium 16x16 with 40, hard 30x16 with 99", difficultyNames()))
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Width of game board, in cells")
	cmd.Flags().IntVarP(&opts.height, "height", "h", 0, "Height of game board, in cells")
	cmd.Flags().IntVarP(&opts.numMines, "mines", "m", 0, "Number of mines to place in the game board")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	cmd.Flags().Var(newDirectorValue("", &opts.director), "director",
		fmt.Sprintf("Make the computer play (%s); --director alone picks constraint", directorNames()))
	cmd.Flags().Lookup("director").NoOptDefVal = "constraint"
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// dimensions resolves the board size from either the difficulty preset or
// the explicit dimension flags
func (opts *options) dimensions(flags *pflag.FlagSet) (Difficulty, error) {
	numExplicit := 0
	for _, name := range []string{"width", "height", "mines"} {
		if flags.Changed(name) {
			numExplicit++
		}
	}

	switch {
	case numExplicit == 0:
		return difficulties[opts.difficulty], nil
	case flags.Changed("difficulty"):
		return Difficulty{}, errDifficultyDimensions
	case numExplicit < 3:
		return Difficulty{}, errPartialDimensions
	default:
		return Difficulty{Width: opts.width, Height: opts.height, NumMines: opts.numMines}, nil
	}
}

func (opts *options) loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		conf.LogFile = opts.logFile
	}
	return conf, nil
}

func (opts *options) newBoard(flags *pflag.FlagSet) (*game.Board, error) {
	dims, err := opts.dimensions(flags)
	if err != nil {
		return nil, err
	}

	board, err := game.New(dims.Width, dims.Height, dims.NumMines, game.NewRandSampler(opts.seed))
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (opts *options) run(flags *pflag.FlagSet) error {
	board, err := opts.newBoard(flags)
	if err != nil {
		return err
	}

	conf, err := opts.loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := newLogger(conf.LogLevel, conf.LogFile)
	if err != nil {
		return err
	}
	game.Log = logger
	term.Log = logger

	logger.WithFields(logrus.Fields{
		"width":    board.Width(),
		"height":   board.Height(),
		"mines":    board.NumMines(),
		"seed":     opts.seed,
		"director": opts.director,
	}).Info("starting game")

	var sessionOptions []term.Option
	if director := newDirector(opts.director, opts.seed); director != nil {
		sessionOptions = append(sessionOptions, term.WithDirector(director, conf.Director.Interval))
	}

	board.Setup()
	return term.Run(board, sessionOptions...)
}
