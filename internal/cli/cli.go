// Package cli implements the finsight command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mura0908/finsight-app-New/internal/config"
	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type app struct {
	configFile string
	config     *config.Config
}

// NewRootCmd returns the finsight command with all subcommands.
// Without a subcommand, the API server is started.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "finsight",
		Short: "FinSight personal finance API",
		Long: `FinSight tracks incomes, expenses, budgets, savings goals and debts
and serves them through a JSON API.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.serve,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file, values from the environment take precedence")

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.closeMonthCmd())
	root.AddCommand(a.exportCmd())
	root.AddCommand(a.importCmd())

	return root
}

// Execute runs the command. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(viper.New(), a.configFile)
	if err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release unless
	// configured otherwise
	gin.SetMode(c.GinMode)
	setupLogging(cmd.ErrOrStderr(), c.LogFormat)

	a.config = c
	return nil
}

// setupLogging configures the global logger.
//
// Without an explicit format, logs are human readable in debug mode
// and JSON otherwise.
func setupLogging(out io.Writer, format string) {
	output := out
	if format == "human" || (format == "" && gin.IsDebugging()) {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

type backend struct {
	db       *gorm.DB
	ledger   *ledger.Ledger
	sessions *session.Store
	release  func()
}

// openLedger connects to the database and creates the ledger on it.
// release closes the database and the event publisher.
func (a *app) openLedger(withEvents bool) (backend, error) {
	err := os.MkdirAll(a.config.DataDir, os.ModePerm)
	if err != nil {
		return backend{}, fmt.Errorf("creating data directory failed: %w", err)
	}

	location, err := a.config.Location()
	if err != nil {
		return backend{}, err
	}

	db, err := models.Connect(a.config.DatabasePath())
	if err != nil {
		return backend{}, err
	}

	sessions := session.NewStore(a.config.RepaymentSessionTTL)
	options := []ledger.Option{
		ledger.WithLocation(location),
		ledger.WithSessions(sessions),
	}

	var publisher events.Publisher = events.Nop{}
	if withEvents && a.config.AMQPURL != "" {
		publisher, err = events.NewAMQP(a.config.AMQPURL, a.config.AMQPExchange, a.config.AMQPQueue)
		if err != nil {
			closeDB(db)
			return backend{}, err
		}
		log.Info().Str("exchange", a.config.AMQPExchange).Str("queue", a.config.AMQPQueue).Msg("Publishing events to AMQP")
	}
	options = append(options, ledger.WithPublisher(publisher))

	release := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Closing event publisher failed")
		}
		closeDB(db)
	}

	return backend{
		db:       db,
		ledger:   ledger.New(db, options...),
		sessions: sessions,
		release:  release,
	}, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Getting database handle failed")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Closing database failed")
	}
}
