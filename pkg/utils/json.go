package utils

import (
	"bytes"
	"encoding/json"
	"github.com/pkg/errors"
)

// Marshal is a stand-in for json.Marshal which *does not escape HTML*
func Marshal(t interface{}) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(t)
	return buffer.Bytes(), errors.Wrapf(err, "unable to encode json")
}

// MarshalIndent is a stand-in for json.MarshalIndent which *does not escape HTML*
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	bs, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var destinationBuffer bytes.Buffer
	err = json.Indent(&destinationBuffer, bs, prefix, indent)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to indent json")
	}
	return destinationBuffer.Bytes(), nil
}

func JsonString(obj interface{}) string {
	bs, err := MarshalIndent(obj, "", "  ")
	DoOrDie(err)
	return string(bs)
}

func ParseJson[T any](bs []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(bs, &t); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal json")
	}
	return &t, nil
}
