package models

// CVE is an external vulnerability identifier. Like bugs, rows are garbage
// collected once no update references them anymore.
type CVE struct {
	Model
	CVEID string `json:"cveId" gorm:"column:cve_id;uniqueIndex;not null;type:text;"`

	Bugs []Bug `json:"bugs" gorm:"many2many:bug_cves;"`
}

func (m CVE) TableName() string {
	return "cves"
}

func (m CVE) URL() string {
	return "https://www.cve.org/CVERecord?id=" + m.CVEID
}
