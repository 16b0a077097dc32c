package internal

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidmdm/x/xerr"
)

func WriteYAML(filename string, value any) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = xerr.MultiErrFrom("", err, file.Close())
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(value)
}

func ReadYAML(filename string, value any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, value)
}
