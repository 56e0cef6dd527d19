// Package check implements the check subcommand.
package check

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/trustprobe"
)

// result is the JSON output of the check subcommand.
type result struct {
	MockLocation  bool `json:"mock_location"`
	DeveloperMode bool `json:"developer_mode"`
}

func signal(value bool) string {
	if value {
		return color.RedString("yes")
	}
	return color.GreenString("no")
}

func init() {
	cmd := root.Command("check", "Compute the trust signals of the device")
	asJSON := cmd.Flag("json", "Print the result as JSON").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		report := env.Probe.Report()
		if *asJSON {
			data, err := json.Marshal(&result{
				MockLocation:  report.MockLocation,
				DeveloperMode: report.DeveloperMode,
			})
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		log.WithField("title", "Trust signals").WithField("type", "section_title").Info("")
		for _, sample := range report.Samples {
			logSample(sample)
		}
		log.WithFields(log.Fields{
			"type":                "table",
			"fine_location":       report.FineLocation,
			"supports_mock_flag":  report.SupportsMockFlag,
			"legacy_mock_setting": report.LegacyMockSetting,
			"mock_location":       signal(report.MockLocation),
			"developer_mode":      signal(report.DeveloperMode),
		}).Info("report")
		return nil
	})
}

func logSample(sample *trustprobe.SampleResult) {
	entry := log.WithField("kind", sample.Kind.String())
	if sample.Kind == trustprobe.SampleFound {
		entry = entry.WithField("mock", sample.Sample.IsMock)
	}
	if sample.Err != nil {
		entry = entry.WithError(sample.Err)
	}
	entry.Infof("provider %s", sample.Provider)
}
