package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v3Description = `<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="3.0" modelName="quadcopter"
    instantiationToken="{token-3}">
  <CoSimulation modelIdentifier="quadcopter"/>
  <ModelVariables>
    <Float64 name="altitude" valueReference="1" causality="output"/>
    <Float64 name="power_cmd" valueReference="2" causality="input">
      <Dimension start="4"/>
    </Float64>
    <Int64 name="gear_count" valueReference="3" causality="parameter"/>
    <String name="callsign" valueReference="4"/>
    <Boolean name="armed" valueReference="5" causality="input"/>
  </ModelVariables>
</fmiModelDescription>`

const v2Description = `<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="2.0" modelName="engine" guid="{guid-2}">
  <CoSimulation modelIdentifier="engine"/>
  <ModelVariables>
    <ScalarVariable name="rpm" valueReference="10" causality="output">
      <Real/>
    </ScalarVariable>
    <ScalarVariable name="throttle" valueReference="11" causality="input">
      <Real/>
    </ScalarVariable>
    <ScalarVariable name="running" valueReference="12">
      <Boolean/>
    </ScalarVariable>
  </ModelVariables>
</fmiModelDescription>`

func TestParseDescriptionV3(t *testing.T) {
	desc, err := ParseDescription([]byte(v3Description))
	require.NoError(t, err)

	assert.Equal(t, "quadcopter", desc.ModelName)
	assert.Equal(t, "quadcopter", desc.ModelIdentifier)
	assert.Equal(t, "3.0", desc.Version)
	assert.Equal(t, "{token-3}", desc.Token)
	require.Len(t, desc.Variables, 5)

	r := BuildRegistry(desc)

	altitude, err := r.Resolve("altitude")
	require.NoError(t, err)
	assert.Equal(t, TypeReal, altitude.Type)
	assert.Equal(t, ValueRef(1), altitude.Reference)
	assert.Equal(t, CausalityOutput, altitude.Causality)
	assert.True(t, altitude.IsScalar())

	powerCmd, err := r.Resolve("power_cmd")
	require.NoError(t, err)
	assert.Equal(t, CausalityInput, powerCmd.Causality)
	assert.Equal(t, []int{4}, powerCmd.Dimensions)
	assert.Equal(t, 4, powerCmd.ElementCount())

	gearCount, err := r.Resolve("gear_count")
	require.NoError(t, err)
	assert.Equal(t, TypeInteger, gearCount.Type)

	callsign, err := r.Resolve("callsign")
	require.NoError(t, err)
	assert.Equal(t, TypeString, callsign.Type)

	armed, err := r.Resolve("armed")
	require.NoError(t, err)
	assert.Equal(t, TypeBoolean, armed.Type)
}

func TestParseDescriptionV2(t *testing.T) {
	desc, err := ParseDescription([]byte(v2Description))
	require.NoError(t, err)

	assert.Equal(t, "engine", desc.ModelIdentifier)
	assert.Equal(t, "2.0", desc.Version)
	assert.Equal(t, "{guid-2}", desc.Token)
	require.Len(t, desc.Variables, 3)

	r := BuildRegistry(desc)

	rpm, err := r.Resolve("rpm")
	require.NoError(t, err)
	assert.Equal(t, TypeReal, rpm.Type)
	assert.Equal(t, ValueRef(10), rpm.Reference)
	assert.True(t, rpm.IsScalar())

	running, err := r.Resolve("running")
	require.NoError(t, err)
	assert.Equal(t, TypeBoolean, running.Type)
}

func TestParseDescriptionRejectsUnsupportedVersion(t *testing.T) {
	doc := `<fmiModelDescription fmiVersion="1.0" modelName="x">
  <CoSimulation modelIdentifier="x"/>
</fmiModelDescription>`

	_, err := ParseDescription([]byte(doc))

	require.Error(t, err)
	assert.IsType(t, &ConfigError{}, err)
}

func TestParseDescriptionRequiresModelIdentifier(t *testing.T) {
	doc := `<fmiModelDescription fmiVersion="3.0" modelName="x"/>`

	_, err := ParseDescription([]byte(doc))

	require.Error(t, err)
}

func TestParseDescriptionRejectsInvalidDimension(t *testing.T) {
	doc := `<fmiModelDescription fmiVersion="3.0" modelName="x">
  <CoSimulation modelIdentifier="x"/>
  <ModelVariables>
    <Float64 name="v" valueReference="1">
      <Dimension start="0"/>
    </Float64>
  </ModelVariables>
</fmiModelDescription>`

	_, err := ParseDescription([]byte(doc))

	require.Error(t, err)
}
