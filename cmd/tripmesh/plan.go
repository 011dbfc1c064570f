package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/tripmesh"
	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/engine"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip with the task-driven agent team",
	Long: `Plan runs the full planning pipeline: task creation, attraction and
weather research, hotel booking and a final itinerary report.

Missing flags are prompted for interactively. Press Ctrl-C during a run to
interrupt it; the summarizer reports whatever state exists at that point.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("destination", "", "destination city (e.g. kyoto)")
	planCmd.Flags().String("check-in", "", "check-in date (YYYY-MM-DD)")
	planCmd.Flags().String("check-out", "", "check-out date (YYYY-MM-DD)")
	planCmd.Flags().Int("guests", 0, "number of guests")
	planCmd.Flags().Int("volleys", 0, "volley budget (0 derives from stay length)")

	_ = viper.BindPFlag("volleys", planCmd.Flags().Lookup("volleys"))
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	report, err := tripmesh.Plan(ctx, req, func(o *tripmesh.Options) {
		o.Logger = buildLogger()
		o.Volleys = viper.GetInt("volleys")
		o.BoardSink = colorBoardSink(cmd.OutOrStdout())
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	color.New(color.Bold).Fprintln(cmd.OutOrStdout(), "=== Itinerary ===")
	fmt.Fprintln(cmd.OutOrStdout(), report)

	return nil
}

// requestFromFlags assembles the travel request, prompting on stdin for any
// field not supplied as a flag.
func requestFromFlags(cmd *cobra.Command) (core.TravelRequest, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	destination, _ := cmd.Flags().GetString("destination")
	if destination == "" {
		destination = prompt(reader, "Destination", "kyoto")
	}

	checkIn, _ := cmd.Flags().GetString("check-in")
	if checkIn == "" {
		checkIn = prompt(reader, "Check-in (YYYY-MM-DD)", "2024-04-01")
	}

	checkOut, _ := cmd.Flags().GetString("check-out")
	if checkOut == "" {
		checkOut = prompt(reader, "Check-out (YYYY-MM-DD)", "2024-04-04")
	}

	guests, _ := cmd.Flags().GetInt("guests")
	if guests <= 0 {
		raw := prompt(reader, "Guests", "2")
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return core.TravelRequest{}, fmt.Errorf("invalid guest count %q", raw)
		}
		guests = n
	}

	return core.TravelRequest{
		Destination: strings.ToLower(destination),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      guests,
	}, nil
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	fmt.Printf("%s [%s]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

var agentColors = map[string]*color.Color{
	core.AgentPlanner:     color.New(color.FgCyan),
	core.AgentResearcher:  color.New(color.FgGreen),
	core.AgentBooker:      color.New(color.FgMagenta),
	core.AgentCoordinator: color.New(color.FgYellow),
	core.ActorHuman:       color.New(color.FgWhite, color.Bold),
	"ah_seng":             color.New(color.FgGreen),
	"mei_qi":              color.New(color.FgMagenta),
	"bala":                color.New(color.FgCyan),
	"dr_tan":              color.New(color.FgRed),
}

// colorBoardSink renders board entries as they land, one color per agent.
func colorBoardSink(w io.Writer) engine.BoardSink {
	return func(entries []core.Entry) {
		for _, e := range entries {
			c, ok := agentColors[e.Agent]
			if !ok {
				c = color.New(color.FgBlue)
			}
			c.Fprintf(w, "[%s] ", e.Agent)
			fmt.Fprintln(w, e.Content)
		}
	}
}
