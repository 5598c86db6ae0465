package model

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// A Description is the parsed metadata of a packaged model: its identity,
// protocol version, and declared variables.
type Description struct {
	ModelName       string
	ModelIdentifier string
	Version         string
	Token           string
	Variables       []VariableDescriptor
}

type xmlDimension struct {
	Start string `xml:"start,attr"`
}

type xmlVariable struct {
	Name           string         `xml:"name,attr"`
	ValueReference uint32         `xml:"valueReference,attr"`
	Causality      string         `xml:"causality,attr"`
	Dimensions     []xmlDimension `xml:"Dimension"`
}

type xmlScalarVariable struct {
	Name           string    `xml:"name,attr"`
	ValueReference uint32    `xml:"valueReference,attr"`
	Causality      string    `xml:"causality,attr"`
	Real           *struct{} `xml:"Real"`
	Integer        *struct{} `xml:"Integer"`
	String         *struct{} `xml:"String"`
	Boolean        *struct{} `xml:"Boolean"`
}

type xmlModelDescription struct {
	XMLName            xml.Name `xml:"fmiModelDescription"`
	Version            string   `xml:"fmiVersion,attr"`
	ModelName          string   `xml:"modelName,attr"`
	GUID               string   `xml:"guid,attr"`
	InstantiationToken string   `xml:"instantiationToken,attr"`

	CoSimulation struct {
		ModelIdentifier string `xml:"modelIdentifier,attr"`
	} `xml:"CoSimulation"`

	Variables struct {
		Float64s []xmlVariable       `xml:"Float64"`
		Int64s   []xmlVariable       `xml:"Int64"`
		Strings  []xmlVariable       `xml:"String"`
		Booleans []xmlVariable       `xml:"Boolean"`
		Scalars  []xmlScalarVariable `xml:"ScalarVariable"`
	} `xml:"ModelVariables"`
}

// ParseDescription parses a model description document in either supported
// protocol dialect.
func ParseDescription(data []byte) (*Description, error) {
	var doc xmlModelDescription
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("cannot parse model description: %v", err),
		}
	}

	if _, err := ProtocolForVersion(doc.Version); err != nil {
		return nil, err
	}

	desc := &Description{
		ModelName:       doc.ModelName,
		ModelIdentifier: doc.CoSimulation.ModelIdentifier,
		Version:         doc.Version,
		Token:           doc.InstantiationToken,
	}
	if desc.Token == "" {
		desc.Token = doc.GUID
	}
	if desc.ModelIdentifier == "" {
		return nil, &ConfigError{
			Reason: "model description declares no co-simulation model identifier",
		}
	}

	if err := collectTypedVariables(desc, &doc); err != nil {
		return nil, err
	}
	if err := collectScalarVariables(desc, &doc); err != nil {
		return nil, err
	}

	return desc, nil
}

func collectTypedVariables(desc *Description, doc *xmlModelDescription) error {
	groups := []struct {
		vars []xmlVariable
		t    VarType
	}{
		{doc.Variables.Float64s, TypeReal},
		{doc.Variables.Int64s, TypeInteger},
		{doc.Variables.Strings, TypeString},
		{doc.Variables.Booleans, TypeBoolean},
	}

	for _, group := range groups {
		for _, v := range group.vars {
			dims, err := parseDimensions(v)
			if err != nil {
				return err
			}

			desc.Variables = append(desc.Variables, VariableDescriptor{
				Name:       v.Name,
				Reference:  ValueRef(v.ValueReference),
				Type:       group.t,
				Causality:  causalityFromString(v.Causality),
				Dimensions: dims,
			})
		}
	}

	return nil
}

func parseDimensions(v xmlVariable) ([]int, error) {
	var dims []int
	for _, d := range v.Dimensions {
		n, err := strconv.Atoi(d.Start)
		if err != nil || n <= 0 {
			return nil, &ConfigError{
				Reason: fmt.Sprintf(
					"variable %s has invalid dimension %q", v.Name, d.Start),
			}
		}
		dims = append(dims, n)
	}

	return dims, nil
}

func collectScalarVariables(desc *Description, doc *xmlModelDescription) error {
	for _, v := range doc.Variables.Scalars {
		var t VarType
		switch {
		case v.Real != nil:
			t = TypeReal
		case v.Integer != nil:
			t = TypeInteger
		case v.String != nil:
			t = TypeString
		case v.Boolean != nil:
			t = TypeBoolean
		default:
			return &ConfigError{
				Reason: fmt.Sprintf("variable %s declares no type", v.Name),
			}
		}

		desc.Variables = append(desc.Variables, VariableDescriptor{
			Name:      v.Name,
			Reference: ValueRef(v.ValueReference),
			Type:      t,
			Causality: causalityFromString(v.Causality),
		})
	}

	return nil
}
