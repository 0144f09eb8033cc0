// Package parsers presents the parsing of configuration files, which will
// parse and generate the related information necessary for the query client
package parsers

import (
	"io/ioutil"

	"share-picture/core/configs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse the client configuration file.
// This function both (a) reads the file from disk, and (b) calls the YAML
// to be parsed.
func ParseClientConfig(filePath string) (*configs.ClientConfig, error) {

	// Get the bytes of the file
	configFileBytes, err := ioutil.ReadFile(filePath)

	if err != nil {
		return nil, err
	}

	return parseClientYaml(configFileBytes, filePath)
}

// Parse the client configuration in the YAML files.
// Fields that are omitted keep the default configuration value. The result is
// not validated here: flags and the environment may still fill in the profile.
func parseClientYaml(fileContents []byte, path string) (*configs.ClientConfig, error) {
	clientConfig := configs.DefaultClientConfig()

	err := yaml.Unmarshal(fileContents, clientConfig)

	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse client config %s", path)
	}

	clientConfig.Path = path

	return clientConfig, nil
}
