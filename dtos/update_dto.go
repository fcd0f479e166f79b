package dtos

type UpdateStatus string

const (
	StatusPending  UpdateStatus = "pending"
	StatusTesting  UpdateStatus = "testing"
	StatusStable   UpdateStatus = "stable"
	StatusObsolete UpdateStatus = "obsolete"
	StatusUnpushed UpdateStatus = "unpushed"
)

type UpdateType string

const (
	TypeSecurity    UpdateType = "security"
	TypeBugfix      UpdateType = "bugfix"
	TypeEnhancement UpdateType = "enhancement"
	TypeNewPackage  UpdateType = "newpackage"
	TypeObsolete    UpdateType = "obsolete"
)

type RequestAction string

const (
	RequestTesting  RequestAction = "testing"
	RequestStable   RequestAction = "stable"
	RequestObsolete RequestAction = "obsolete"
	RequestUnpush   RequestAction = "unpush"
)

// SystemUser is the author recorded on comments the system appends on its
// own behalf. Comments by this author never count towards karma and are
// excluded from comment notifications.
const SystemUser = "updatehub"

type CreateUpdateRequest struct {
	Release   string   `json:"release" validate:"required"`
	Builds    []string `json:"builds" validate:"required,min=1,dive,required"`
	Type      string   `json:"type" validate:"required,oneof=security bugfix enhancement newpackage obsolete"`
	Notes     string   `json:"notes"`
	Bugs      []int    `json:"bugs"`
	CVEs      []string `json:"cves"`
	CloseBugs *bool    `json:"closeBugs"`
}

type SubmitRequestRequest struct {
	Action    string `json:"action" validate:"required,oneof=testing stable obsolete unpush"`
	PathCheck *bool  `json:"pathCheck"`
}

type CreateCommentRequest struct {
	Text      string `json:"text"`
	Karma     int    `json:"karma" validate:"gte=-1,lte=1"`
	Anonymous bool   `json:"anonymous"`
}

type UpdateBugsRequest struct {
	Bugs []int `json:"bugs" validate:"required"`
}

type UpdateCVEsRequest struct {
	CVEs []string `json:"cves" validate:"required,dive,required"`
}

type CreateReleaseRequest struct {
	Name         string `json:"name" validate:"required"`
	LongName     string `json:"longName" validate:"required"`
	Version      int    `json:"version" validate:"required"`
	IDPrefix     string `json:"idPrefix" validate:"required"`
	DistTag      string `json:"distTag" validate:"required"`
	StableTag    string `json:"stableTag"`
	TestingTag   string `json:"testingTag"`
	CandidateTag string `json:"candidateTag"`
}

type CreatePackageRequest struct {
	Name          string   `json:"name" validate:"required"`
	Committers    []string `json:"committers"`
	StableKarma   int      `json:"stableKarma"`
	UnstableKarma int      `json:"unstableKarma"`
}
