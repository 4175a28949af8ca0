package main

import (
	"fmt"
	"os"

	"teenpatti-server/internal/config"
	"teenpatti-server/pkg/teenpatti"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	PlayersFName = "players"
	SeedFName    = "seed"
)

func main() {
	app := cli.NewApp()
	app.Name = "teenpatti"
	app.Usage = "deal one three-card game and print the winner"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: PlayersFName, Value: config.Instance().Players},
		cli.Int64Flag{Name: SeedFName, Usage: "deterministic shuffle seed"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	game, err := teenpatti.NewGame(logrus.StandardLogger(), teenpatti.Options{
		Players: c.Int(PlayersFName),
		Seed:    c.Int64(SeedFName),
	})
	if err != nil {
		return err
	}

	if err := game.Deal(); err != nil {
		return err
	}

	for _, p := range game.Participants() {
		fmt.Printf("Player %d hand: %s\n", p.ID, p.Hand())
		fmt.Printf("Player %d hand type: %s\n", p.ID, p.Analysis().Category())
	}

	if err := game.Evaluate(); err != nil {
		return err
	}

	winner, err := game.SingleWinner()
	if err != nil {
		return err
	}

	fmt.Printf("\nWinner: Player %d with %s (%s)\n", winner.ID, winner.Hand(), winner.Analysis().Category())
	return nil
}
