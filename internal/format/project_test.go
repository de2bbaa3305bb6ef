package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/target/edr-bridge/internal/console"
)

func TestValidateProjection(t *testing.T) {
	require.NoError(t, ValidateProjection(""))
	require.NoError(t, ValidateProjection("   "))
	require.NoError(t, ValidateProjection("endpointName"))
	require.NoError(t, ValidateProjection("[endpointName, processName]"))
	require.NoError(t, ValidateProjection("{host: endpointName, proc: processName}"))

	require.Error(t, ValidateProjection("[unbalanced"))
	require.Error(t, ValidateProjection("a..b"))
}

func TestProjectEventsUsesWireFieldNames(t *testing.T) {
	events := []console.Event{
		{ID: "e-1", EndpointName: "host-1", ProcessName: "cmd.exe"},
		{ID: "e-2", EndpointName: "host-2", ProcessName: "sh"},
	}

	out, err := ProjectEvents(events, "endpointName")
	require.NoError(t, err)
	require.Equal(t, "\"host-1\"\n\"host-2\"", out)
}

func TestProjectEventsMultiselect(t *testing.T) {
	events := []console.Event{{ID: "e-1", EndpointName: "host-1", ProcessName: "cmd.exe"}}

	out, err := ProjectEvents(events, "{host: endpointName, proc: processName}")
	require.NoError(t, err)
	require.Contains(t, out, `"host":"host-1"`)
	require.Contains(t, out, `"proc":"cmd.exe"`)
}

func TestProjectEventsMissingFieldIsNull(t *testing.T) {
	events := []console.Event{{ID: "e-1"}}

	out, err := ProjectEvents(events, "user")
	require.NoError(t, err)
	require.Equal(t, "null", out)
}

func TestProjectEventsInvalidExpression(t *testing.T) {
	_, err := ProjectEvents([]console.Event{{ID: "e-1"}}, "[broken")
	require.Error(t, err)
}
