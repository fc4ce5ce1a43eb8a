package archive

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/turnlog/turnlog/pkg/elastic_client"
	"github.com/turnlog/turnlog/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "archiver",
		Usage: "Mirror submitted turnaround reports into the warehouse",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the archive queue consumer",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(false); err != nil {
						return err
					}

					archiver, err := NewArchiver()
					if err != nil {
						return err
					}

					archiver.StartConsumers()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish
					elastic_client.WaitUntilQueueEmpty()

					return nil
				},
			},
		},
	}
}
