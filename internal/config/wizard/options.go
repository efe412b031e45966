package wizard

import "github.com/charmbracelet/huh"

// RegionOption represents a cloud region.
type RegionOption struct {
	Value       string
	Label       string
	Description string
}

// SetupTypeOption represents a compute footprint choice.
type SetupTypeOption struct {
	Value       string
	Label       string
	Description string
}

// Regions contains the regions offered by the wizard. Any region matching
// the expected format is accepted via the config file path; the wizard
// only lists the common ones.
var Regions = []RegionOption{
	{Value: "us-central1", Label: "us-central1", Description: "Iowa, USA"},
	{Value: "us-east1", Label: "us-east1", Description: "South Carolina, USA"},
	{Value: "us-west1", Label: "us-west1", Description: "Oregon, USA"},
	{Value: "europe-west1", Label: "europe-west1", Description: "Belgium"},
	{Value: "europe-west3", Label: "europe-west3", Description: "Frankfurt, Germany"},
	{Value: "asia-southeast1", Label: "asia-southeast1", Description: "Singapore"},
}

// SetupTypes contains the supported compute footprints.
var SetupTypes = []SetupTypeOption{
	{Value: "standard", Label: "Standard", Description: "Development instance (e2-standard-2)"},
	{Value: "all-in-one", Label: "All-in-one", Description: "Single larger instance hosting everything (e2-standard-8)"},
}

// ZoneSuffixes contains the zone suffixes offered per region.
var ZoneSuffixes = []string{"a", "b", "c"}

// RegionsToOptions converts RegionOption slice to huh.Option slice.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Regions))
	for i, r := range Regions {
		opts[i] = huh.NewOption(r.Label+" - "+r.Description, r.Value)
	}
	return opts
}

// SetupTypesToOptions converts SetupTypeOption slice to huh.Option slice.
func SetupTypesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(SetupTypes))
	for i, st := range SetupTypes {
		opts[i] = huh.NewOption(st.Label+" - "+st.Description, st.Value)
	}
	return opts
}

// ZonesToOptions builds the zone options for a selected region.
func ZonesToOptions(region string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(ZoneSuffixes))
	for i, s := range ZoneSuffixes {
		zone := region + "-" + s
		opts[i] = huh.NewOption(zone, zone)
	}
	return opts
}
