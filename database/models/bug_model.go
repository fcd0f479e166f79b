package models

import "fmt"

// Bug caches metadata of an external ticket. Rows exist only while at least
// one update references them; reconciliation deletes orphans.
type Bug struct {
	Model
	BugID int    `json:"bugId" gorm:"column:bug_id;uniqueIndex;not null;"`
	Title string `json:"title" gorm:"type:text;"`
	// Security is set when the ticket carries a security keyword.
	Security bool `json:"security" gorm:"default:false;"`
	// Parent marks release-independent tracker bugs which must only be
	// closed once all their dependent tickets are closed.
	Parent bool `json:"parent" gorm:"default:false;"`
	// URL overrides the default ticket URL for bugs living in an external
	// tracker.
	URL *string `json:"url" gorm:"type:text;"`

	CVEs []CVE `json:"cves" gorm:"many2many:bug_cves;"`
}

func (m Bug) TableName() string {
	return "bugs"
}

func (m Bug) TicketURL(baseURL string) string {
	if m.URL != nil {
		return *m.URL
	}
	return fmt.Sprintf("%s/show_bug.cgi?id=%d", baseURL, m.BugID)
}
