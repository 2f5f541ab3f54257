package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/catalog"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// describeFlags lists every field flag in help order.
var describeFlags = []struct {
	key  string
	help string
}{
	{catalog.KeyID, messages.FlagID},
	{catalog.KeyBrand, messages.FlagBrand},
	{catalog.KeyModel, messages.FlagModel},
	{catalog.KeyPrice, messages.FlagPrice},
	{catalog.KeyLoadCapacityKg, messages.FlagLoadCapacityKg},
	{catalog.KeyWaterUseLiters, messages.FlagWaterUseLiters},
	{catalog.KeyWashCycles, messages.FlagWashCycles},
	{catalog.KeyDoorCount, messages.FlagDoorCount},
	{catalog.KeyVolumeCubicMeters, messages.FlagVolumeCubicMeters},
	{catalog.KeyVolumeCubicFeet, messages.FlagVolumeCubicFeet},
	{catalog.KeyPowerWatts, messages.FlagPowerWatts},
	{catalog.KeyEnergyUseWatts, messages.FlagEnergyUseWatts},
	{catalog.KeyDimensions, messages.FlagDimensions},
}

var newID = uuid.NewString

// flagName maps a field key to its flag name.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	values := make(map[string]*string, len(describeFlags))
	cmd := &cobra.Command{
		Use:   messages.DescribeUse,
		Short: messages.DescribeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := appliance.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf(messages.DescribeUnknownFmt, args[0])
			}
			defs, err := catalog.FieldsFor(kind)
			if err != nil {
				return err
			}
			fields := catalog.Fields{}
			for _, def := range defs {
				fields[def.Key] = *values[def.Key]
			}
			if strings.TrimSpace(fields[catalog.KeyID]) == "" {
				fields[catalog.KeyID] = newID()
			}

			session, logger, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			created, err := session.Create(kind, fields)
			if err != nil {
				rejected := catalog.RejectedFields(err)
				if len(rejected) == 0 {
					return err
				}
				stderr := cmd.ErrOrStderr()
				_, _ = color.New(color.FgRed).Fprintln(stderr, messages.MenuInputErrorTitle)
				_, _ = fmt.Fprintf(stderr, messages.MenuErrorDetailFmt+"\n", err)
				for _, key := range rejected {
					_, _ = fmt.Fprintf(stderr, messages.DescribeRejectedFlagFmt+"\n", flagName(key))
				}
				return &SilentExitError{Code: 2}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), created.DescribeIn(session.Labels()))
			return nil
		},
	}

	for _, flag := range describeFlags {
		values[flag.key] = cmd.Flags().String(flagName(flag.key), "", flag.help)
	}
	return cmd
}
