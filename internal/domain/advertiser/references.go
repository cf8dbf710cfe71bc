package advertiser

import "fmt"

// References counts the rows that point at an advertiser.
type References struct {
	Ads       int64
	Contracts int64
}

// InUse reports whether anything still depends on the advertiser.
func (r References) InUse() bool {
	return r.Ads > 0 || r.Contracts > 0
}

func (r References) String() string {
	return fmt.Sprintf("%d ads, %d contracts", r.Ads, r.Contracts)
}
