// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"azc"`
}

const EnvPrefix = "AZC"

func loadFromEnv() (RawConfig, error) {
	jsonHarnessConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonHarnessConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load bridge configs
	index := 1
	for {
		rawBridgeConfig := os.Getenv(fmt.Sprintf("%s_BRG_%d", EnvPrefix, index))
		if rawBridgeConfig == "" {
			break
		}
		var bc map[string]interface{}
		err = json.Unmarshal([]byte(rawBridgeConfig), &bc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.BridgeConfigs = append(rawConfig.BridgeConfigs, bc)
		index++
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
