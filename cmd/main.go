package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"spellcheck/internal/checker"
	"spellcheck/internal/customdict"
	"spellcheck/pkg/lexicon"
)

func main() {
	app := &cli.App{
		Name:      "spellcheck",
		Usage:     "check a text file against a word list and suggest corrections",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Usage:   "word list file",
				Value:   "words.txt",
				EnvVars: []string{"DICTIONARY_PATH"},
			},
			&cli.IntFlag{
				Name:  "expect-words",
				Usage: "fail unless the dictionary holds exactly this many words (0 disables the check)",
			},
			&cli.IntFlag{
				Name:  "min-length",
				Usage: "skip tokens shorter than this",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print every token as it is checked",
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis address for the custom dictionary (empty disables it)",
				EnvVars: []string{"REDIS_ADDR"},
			},
			&cli.StringFlag{
				Name:    "redis-password",
				EnvVars: []string{"REDIS_PASSWORD"},
			},
			&cli.IntFlag{
				Name:    "redis-db",
				EnvVars: []string{"REDIS_DB"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	var lopts []lexicon.Option
	if n := c.Int("expect-words"); n > 0 {
		lopts = append(lopts, lexicon.WithExpectedLen(n))
	}
	lex, err := lexicon.LoadFile(c.String("dict"), lopts...)
	if err != nil {
		return err
	}
	log.Printf("dictionary loaded: %d words", lex.Len())

	var store checker.CustomStore
	if addr := c.String("redis-addr"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: c.String("redis-password"),
			DB:       c.Int("redis-db"),
		})
		store = customdict.New(client)
	}

	cfg := checker.Config{MinWordLength: c.Int("min-length")}
	chk := checker.NewWithLexicon(c.Context, lex, cfg, store)

	var in io.Reader = os.Stdin
	if c.Args().Len() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	verbose := c.Bool("verbose")
	misspelled := 0
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		for _, tok := range checker.Tokens(s.Text()) {
			if verbose {
				fmt.Fprintf(out, "Checking: %s\n", strings.ToLower(tok))
			}
			rep := chk.CheckWord(tok)
			if rep == nil {
				continue
			}
			misspelled++
			if err := checker.WriteReport(out, *rep); err != nil {
				return err
			}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if verbose {
		fmt.Fprintf(out, "%d misspelled words\n", misspelled)
	}
	return nil
}
