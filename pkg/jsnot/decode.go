package jsnot

import (
	"bytes"
	"encoding/json"
	"github.com/bigrep/jsnot/pkg/utils"
	"github.com/pkg/errors"
	goyaml "gopkg.in/yaml.v3"
	"io"
	"io/ioutil"
	"sigs.k8s.io/yaml"
)

// FromJson decodes a JSON document and wraps the result.
func FromJson(bs []byte) (*Wrapper, error) {
	var value interface{}
	if err := json.Unmarshal(bs, &value); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal json")
	}
	return Wrap(value), nil
}

func FromJsonString(s string) (*Wrapper, error) {
	return FromJson([]byte(s))
}

func FromJsonReader(r io.Reader) (*Wrapper, error) {
	bs, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read")
	}
	return FromJson(bs)
}

func FromJsonFile(path string) (*Wrapper, error) {
	bs, err := utils.ReadFileBytes(path)
	if err != nil {
		return nil, err
	}
	return FromJson(bs)
}

// FromYaml decodes a single YAML document and wraps the result.  Decoding
// goes through sigs.k8s.io/yaml, so the wrapped value has JSON shape:
// map[string]interface{} objects and float64 numbers.
func FromYaml(bs []byte) (*Wrapper, error) {
	var value interface{}
	if err := yaml.Unmarshal(bs, &value); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal yaml")
	}
	return Wrap(value), nil
}

func FromYamlFile(path string) (*Wrapper, error) {
	bs, err := utils.ReadFileBytes(path)
	if err != nil {
		return nil, err
	}
	return FromYaml(bs)
}

// FromYamlStream decodes a multi-document YAML stream into one wrapper per
// document.  Unlike FromYaml this uses gopkg.in/yaml.v3 directly, so numbers
// keep their integer identity.
func FromYamlStream(bs []byte) ([]*Wrapper, error) {
	decoder := goyaml.NewDecoder(bytes.NewReader(bs))

	var wrappers []*Wrapper
	for {
		var next interface{}
		err := decoder.Decode(&next)
		if err == io.EOF {
			break
		} else if err != nil {
			return wrappers, errors.Wrapf(err, "unable to decode yaml document")
		}
		wrappers = append(wrappers, Wrap(next))
	}

	return wrappers, nil
}
