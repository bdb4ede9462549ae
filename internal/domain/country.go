package domain

// Country is an ISO 3166 entry together with the zones listed for it in the zone table.
type Country struct {
	Code  string
	Name  string
	Zones []string
}

// ZoneInfo is one row of the zone table (zone1970.tab).
type ZoneInfo struct {
	Countries   []string
	Coordinates string
	Zone        string
	Comment     string
}

// WindowsMapping ties a Windows time zone id to an IANA zone name.
type WindowsMapping struct {
	Zone      string
	WindowsID string
}
