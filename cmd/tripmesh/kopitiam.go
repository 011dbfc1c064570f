package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/tripmesh"
	"github.com/hupe1980/tripmesh/model"
	"github.com/hupe1980/tripmesh/model/anthropic"
	"github.com/hupe1980/tripmesh/model/openai"
)

var kopitiamCmd = &cobra.Command{
	Use:   "kopitiam [opening line]",
	Short: "Run a kopitiam conversation between local personas",
	Long: `Kopitiam runs the model-driven conversation variant: a coordinator
model passes the floor between a hawker uncle, an influencer, a taxi
driver and a retired teacher until the volley budget runs out.

The provider and model come from configuration (provider: openai,
anthropic or mock; TRIPMESH_PROVIDER / TRIPMESH_MODEL as environment
variables). The mock provider needs no API key and produces a short run
of canned utterances, useful for checking the wiring.`,
	RunE: runKopitiam,
}

func init() {
	kopitiamCmd.Flags().Int("volleys", 0, "volley budget (0 uses the default of 8)")
}

func runKopitiam(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opener := "Eh, nice morning hor? What's the latest news?"
	if len(args) > 0 {
		opener = strings.Join(args, " ")
	}

	m, err := buildModel()
	if err != nil {
		return err
	}

	volleys, _ := cmd.Flags().GetInt("volleys")

	transcript, err := tripmesh.Kopitiam(ctx, m, opener, func(o *tripmesh.Options) {
		o.Logger = buildLogger()
		o.Volleys = volleys
		o.BoardSink = colorBoardSink(cmd.OutOrStdout())
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	color.New(color.Bold).Fprintln(cmd.OutOrStdout(), "=== Transcript ===")
	fmt.Fprintln(cmd.OutOrStdout(), transcript)

	return nil
}

// buildModel resolves the conversation model from configuration.
func buildModel() (model.Model, error) {
	provider := strings.ToLower(viper.GetString("provider"))
	name := viper.GetString("model")

	switch provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if name != "" {
				o.Model = name
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if name != "" {
				o.Model = anthropicsdk.Model(name)
			}
		}), nil
	case "mock":
		return model.NewMockModel("mock"), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai, anthropic or mock)", provider)
	}
}
