package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/whence/calc"
	"github.com/teranos/whence/components"
	"github.com/teranos/whence/config"
	"github.com/teranos/whence/resolve"
)

// ResolveCmd resolves a recognized temporal expression from its lexical
// category and literals
var ResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a recognized temporal expression",
	Long: `Resolve a recognized temporal expression into calendar dates.

Each subcommand corresponds to one lexical category of the resolver
contract. Literals arrive as flags the way a recognizer layer would
hand them over; no free text is parsed here.`,
}

var casualCmd = &cobra.Command{
	Use:   "casual",
	Short: "Resolve a casual reference (today, tomorrow, next week, ...)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := baseInput(cmd)
		if err != nil {
			return err
		}
		in.Category = resolve.CategoryCasualDate
		casual, _ := cmd.Flags().GetString("casual")
		in.Casual = resolve.Casual(casual)
		in.Count, _ = cmd.Flags().GetInt("count")
		return runResolve(cmd, in)
	},
}

var weekdayCmd = &cobra.Command{
	Use:   "weekday",
	Short: "Resolve a weekday mention (0=Sunday..6=Saturday) with a modifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := baseInput(cmd)
		if err != nil {
			return err
		}
		in.Category = resolve.CategoryWeekday
		in.Weekday, _ = cmd.Flags().GetInt("weekday")
		modifier, _ := cmd.Flags().GetString("modifier")
		in.Modifier = calc.Modifier(modifier)
		return runResolve(cmd, in)
	},
}

var monthdayCmd = &cobra.Command{
	Use:   "monthday",
	Short: "Resolve a month-day mention or day span",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := baseInput(cmd)
		if err != nil {
			return err
		}
		in.Category = resolve.CategoryMonthDay
		in.Day, _ = cmd.Flags().GetInt("day")
		in.EndDay, _ = cmd.Flags().GetInt("end-day")
		in.Month, _ = cmd.Flags().GetInt("month")
		in.Year, _ = cmd.Flags().GetInt("year")
		return runResolve(cmd, in)
	},
}

var daypartCmd = &cobra.Command{
	Use:   "daypart",
	Short: "Resolve a qualitative day-part word (morning, noon, midnight, ...)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := baseInput(cmd)
		if err != nil {
			return err
		}
		in.Category = resolve.CategoryDayPart
		part, _ := cmd.Flags().GetString("part")
		in.DayPart = calc.DayPart(part)
		return runResolve(cmd, in)
	},
}

func init() {
	ResolveCmd.PersistentFlags().String("ref", "", "Reference instant (RFC3339, default: config or current time)")
	ResolveCmd.PersistentFlags().Int("offset", 0, "Fixed UTC offset in minutes recorded on the result")
	ResolveCmd.PersistentFlags().BoolP("json", "j", false, "Output as JSON")

	casualCmd.Flags().String("casual", "today", "Casual reference lexeme")
	casualCmd.Flags().Int("count", 0, "Day count for days-ago / days-ahead")

	weekdayCmd.Flags().Int("weekday", 0, "Target weekday, 0=Sunday..6=Saturday")
	weekdayCmd.Flags().String("modifier", "", "Directional modifier: this, next, last, or empty")

	monthdayCmd.Flags().Int("day", 0, "Day of month")
	monthdayCmd.Flags().Int("end-day", 0, "End day for a span (0 = single date)")
	monthdayCmd.Flags().Int("month", 0, "Month number, 1-12")
	monthdayCmd.Flags().Int("year", 0, "Explicit year (0 = imply closest year)")

	daypartCmd.Flags().String("part", "", "Day-part lexeme")

	ResolveCmd.AddCommand(casualCmd)
	ResolveCmd.AddCommand(weekdayCmd)
	ResolveCmd.AddCommand(monthdayCmd)
	ResolveCmd.AddCommand(daypartCmd)
}

// baseInput builds the common part of the resolver input from persistent
// flags and configuration
func baseInput(cmd *cobra.Command) (resolve.Input, error) {
	cfg, err := config.Load()
	if err != nil {
		return resolve.Input{}, err
	}

	refFlag, _ := cmd.Flags().GetString("ref")
	if refFlag == "" {
		refFlag = cfg.Resolve.Reference
	}

	ref := time.Now()
	if refFlag != "" {
		ref, err = time.Parse(time.RFC3339, refFlag)
		if err != nil {
			return resolve.Input{}, fmt.Errorf("invalid reference instant %q: %w", refFlag, err)
		}
	}

	in := resolve.Input{Reference: ref}
	if cmd.Flags().Changed("offset") {
		offset, _ := cmd.Flags().GetInt("offset")
		in.TZOffsetMinutes = &offset
	} else if cfg.Resolve.TimezoneOffsetMinutes != nil {
		in.TZOffsetMinutes = cfg.Resolve.TimezoneOffsetMinutes
	}
	return in, nil
}

func runResolve(cmd *cobra.Command, in resolve.Input) error {
	result, err := resolve.Resolve(in)
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput || cfg.Output.JSON {
		return printJSON(in.Reference, result, cfg.Output.Layout)
	}

	printHuman(in.Reference, result, cfg.Output.Layout)
	return nil
}

// resolvedOutput is the machine-readable rendering of one component set
type resolvedOutput struct {
	Components map[string]fieldOutput `json:"components"`
	Resolved   string                 `json:"resolved,omitempty"`
}

type fieldOutput struct {
	Value     int    `json:"value"`
	Certainty string `json:"certainty"`
}

func printJSON(ref time.Time, result *resolve.Result, layout string) error {
	out := map[string]resolvedOutput{
		"start": renderOutput(ref, result.Start, layout),
	}
	if result.End != nil {
		out["end"] = renderOutput(ref, result.End, layout)
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func renderOutput(ref time.Time, c *components.Components, layout string) resolvedOutput {
	out := resolvedOutput{Components: map[string]fieldOutput{}}
	for _, f := range []components.Field{
		components.Year, components.Month, components.Day,
		components.Hour, components.Minute, components.Second,
		components.Millisecond, components.Weekday, components.Meridiem,
		components.TZOffset,
	} {
		if value, certainty := c.Get(f); certainty != components.Unset {
			out.Components[f.String()] = fieldOutput{Value: value, Certainty: certainty.String()}
		}
	}
	if resolved, err := c.Resolve(ref); err == nil {
		out.Resolved = resolved.Format(layout)
	}
	return out
}

func printHuman(ref time.Time, result *resolve.Result, layout string) {
	printComponents(ref, "Start", result.Start, layout)
	if result.End != nil {
		pterm.Println()
		printComponents(ref, "End", result.End, layout)
	}
}

func printComponents(ref time.Time, label string, c *components.Components, layout string) {
	pterm.DefaultSection.Println(label)
	pterm.Info.Printf("Components: %s\n", c.String())
	if resolved, err := c.Resolve(ref); err == nil {
		pterm.Success.Printf("Resolved: %s\n", resolved.Format(layout))
	} else {
		pterm.Warning.Printf("Not resolvable to an instant: %v\n", err)
	}
}
