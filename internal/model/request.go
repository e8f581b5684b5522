package model

import "fmt"

// Ad channel identifiers accepted by the cost estimator. Unknown
// channels fall through to a default base cost rather than erroring.
const (
	AdTypeYoutube   = "youtube"
	AdTypeNewspaper = "newspaper"
	AdTypePPC       = "ppc"
)

// SimulationRequest describes one marketing scenario to evaluate.
type SimulationRequest struct {
	ProductCategory string `json:"productCategory"`
	Subcategory     string `json:"subcategory"`
	Location        string `json:"location"`
	Competitors     string `json:"competitors"` // comma-separated list
	AdType          string `json:"adType"`
	AdApproach      string `json:"adApproach"`
	Subscribers     int    `json:"subscribers"`
}

// Validate checks that all fields required for a full simulation are set.
func (r *SimulationRequest) Validate() error {
	switch {
	case r.ProductCategory == "":
		return fmt.Errorf("productCategory is required")
	case r.Subcategory == "":
		return fmt.Errorf("subcategory is required")
	case r.Location == "":
		return fmt.Errorf("location is required")
	case r.Competitors == "":
		return fmt.Errorf("competitors is required")
	case r.AdType == "":
		return fmt.Errorf("adType is required")
	case r.AdApproach == "":
		return fmt.Errorf("adApproach is required")
	}
	if r.Subscribers < 0 {
		return fmt.Errorf("subscribers must be non-negative")
	}
	if r.AdType == AdTypeYoutube && r.Subscribers <= 0 {
		return fmt.Errorf("subscribers must be positive for youtube ads")
	}
	return nil
}

// ValidateCost checks only the fields the cost endpoint needs.
func (r *SimulationRequest) ValidateCost() error {
	if r.AdType == "" || r.AdApproach == "" {
		return fmt.Errorf("adType and adApproach are required")
	}
	return nil
}
