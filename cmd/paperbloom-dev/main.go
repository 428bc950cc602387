// paperbloom-dev hosts the in-memory dev implementation of the remote
// collection store, for developing the editor against without a backend.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alissonroosa/paperbloom-digital-sub001/devserver"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/config"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paperbloom-dev",
		Short:         "Development tooling for the paperbloom editing engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port int
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the in-memory collection store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if port == 0 {
				port = cfg.DevServerPort
			}

			log := logger.New("paperbloom-dev")
			srv := devserver.New(log)
			if seed {
				id := srv.Seed("Recipient", "Sender")
				log.Info().Str("collection_id", id).Msg("seeded collection")
			}

			addr := fmt.Sprintf(":%d", port)
			log.Info().Str("addr", addr).Msg("dev server listening")
			return http.ListenAndServe(addr, srv.Router())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from PAPERBLOOM_DEV_SERVER_PORT)")
	cmd.Flags().BoolVar(&seed, "seed", false, "seed one collection with twelve blank cards at startup")
	return cmd
}
