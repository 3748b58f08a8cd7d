package windfind_test

import (
	"encoding/json"
	"testing"

	"github.com/sailhq/windfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNode(t *testing.T, raw string) *windfind.Node {
	t.Helper()
	var n windfind.Node
	require.NoError(t, json.Unmarshal([]byte(raw), &n))
	return &n
}

func TestNode_Merge_FillsNullLeaves(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"location_information": {"name": "WS Lanzarote", "city": "Playa Honda"}}`))

	assert.True(t, rec.Populated("location_information", "name"))
	assert.Equal(t, "WS Lanzarote", *rec.Get("location_information", "name").Value)
	assert.Equal(t, "Playa Honda", *rec.Get("location_information", "city").Value)
	assert.True(t, rec.Get("location_information", "contact_details", "phone").Null())
}

func TestNode_Merge_ScalarIdempotence(t *testing.T) {
	t.Parallel()

	part := parseNode(t, `{"location_information": {"name": "First"}}`)

	rec := windfind.NewRecord()
	rec.Merge(part)
	rec.Merge(part)

	once := windfind.NewRecord()
	once.Merge(part)

	assert.Equal(t, mustJSON(t, once), mustJSON(t, rec))
}

func TestNode_Merge_Monotonic(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"location_information": {"name": "First"}}`))
	rec.Merge(parseNode(t, `{"location_information": {"name": "Second"}}`))
	rec.Merge(parseNode(t, `{"location_information": {"name": null}}`))

	assert.Equal(t, "First", *rec.Get("location_information", "name").Value)
}

func TestNode_Merge_ListsAppendWithoutDeduplication(t *testing.T) {
	t.Parallel()

	part := parseNode(t, `{"courses": [{"name": "Beginner"}]}`)

	rec := windfind.NewRecord()
	rec.Merge(part)
	rec.Merge(part)

	// Intentional non-idempotence: list fields grow on every merge.
	assert.Len(t, rec.Get("courses").Items, 2)
}

func TestNode_Merge_TakesSubtreeWholesaleForNullKey(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"pricing": {"windsurfing": {"hourly_rate": 20, "daily_rate": "50"}}}`))

	assert.Equal(t, "20", *rec.Get("pricing", "windsurfing", "hourly_rate").Value)
	assert.Equal(t, "50", *rec.Get("pricing", "windsurfing", "daily_rate").Value)
}

func TestNode_Merge_KeepsUnknownKeys(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"opening_hours": "9-17"}`))

	assert.Equal(t, "9-17", *rec.Get("opening_hours").Value)
}

func TestNode_LocationComplete(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	assert.False(t, rec.LocationComplete())

	rec.Merge(parseNode(t, `{"location_information": {"name": "WS Lanzarote"}}`))
	assert.False(t, rec.LocationComplete())

	rec.Merge(parseNode(t, `{"location_information": {"city": "Playa Honda"}}`))
	assert.True(t, rec.LocationComplete())
}

func TestNode_LocationComplete_EmptyStringDoesNotCount(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"location_information": {"name": "", "city": "Playa Honda"}}`))

	assert.False(t, rec.LocationComplete())
}

func TestNode_PricingComplete(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"pricing": {
		"windsurfing": {"hourly_rate": "20", "daily_rate": "50"},
		"surfing": {"availability": "yes", "hourly_rate": "15", "daily_rate": "40"},
		"equipment_rental": {"rental_rate_per_hour": "10", "rental_rate_per_day": "30"}
	}}`))

	assert.True(t, rec.PricingComplete())
}

func TestNode_PricingComplete_PartialIsIncomplete(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"pricing": {"windsurfing": {"hourly_rate": "20"}}}`))

	assert.False(t, rec.PricingComplete())
}

func TestNode_MarshalJSON_PreservesFieldOrderAndNulls(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	out := mustJSON(t, rec)

	// Schema order, not alphabetical.
	assert.Regexp(t, `"location_information".*"pricing".*"courses".*"transport_options"`, out)
	assert.Contains(t, out, `"name":null`)
	assert.Contains(t, out, `"courses":[]`)
}

func TestNode_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	rec := windfind.NewRecord()
	rec.Merge(parseNode(t, `{"location_information": {"name": "WS Lanzarote"}, "courses": [{"name": "Beginner"}]}`))

	var back windfind.Node
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, rec)), &back))

	assert.Equal(t, mustJSON(t, rec), mustJSON(t, &back))
}

func TestNode_UnmarshalJSON_CoercesScalars(t *testing.T) {
	t.Parallel()

	n := parseNode(t, `{"rate": 19.5, "available": true}`)

	assert.Equal(t, "19.5", *n.Get("rate").Value)
	assert.Equal(t, "true", *n.Get("available").Value)
}

func mustJSON(t *testing.T, n *windfind.Node) string {
	t.Helper()
	b, err := json.Marshal(n)
	require.NoError(t, err)
	return string(b)
}
