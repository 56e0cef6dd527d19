// Package setting implements the setting subcommand.
package setting

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/sikapp/devicetrust/internal/cli/root"
	"github.com/sikapp/devicetrust/internal/model"
)

var namespaces = []string{model.SettingsNamespaceGlobal, model.SettingsNamespaceSecure}

func init() {
	cmd := root.Command("setting", "Read and write settings in the state directory")

	getCmd := cmd.Command("get", "Read a setting")
	getNamespace := getCmd.Arg("namespace", "the settings namespace").Required().Enum(namespaces...)
	getName := getCmd.Arg("name", "the setting name").Required().String()
	getCmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		value, err := env.Settings.GetInt(*getNamespace, *getName)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	})

	setCmd := cmd.Command("set", "Write a setting")
	setNamespace := setCmd.Arg("namespace", "the settings namespace").Required().Enum(namespaces...)
	setName := setCmd.Arg("name", "the setting name").Required().String()
	setValue := setCmd.Arg("value", "the integer value").Required().Int64()
	setCmd.Action(func(_ *kingpin.ParseContext) error {
		env, err := root.Init()
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		return env.Settings.SetInt(*setNamespace, *setName, *setValue)
	})
}
