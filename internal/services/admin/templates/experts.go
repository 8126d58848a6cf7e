package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedtemplates "github.com/doubtsclear/console/internal/services/shared/templates"
)

// ExpertsView provides data for the all, verified and unverified expert lists.
type ExpertsView struct {
	// BasePath is the list route being rendered.
	BasePath string
	// TitleKey names the list variant.
	TitleKey string
	List     ListView[consultapi.Expert]
	Modal    ModalState
	Selected *consultapi.Expert
	Create   forms.ExpertCreateForm
	Edit     forms.ExpertEditForm
	Errors   forms.Errors
}

// Document is one uploaded expert document.
type Document struct {
	LabelKey string
	URL      string
	Video    bool
}

// ExpertReviewView provides data for the expert verification page.
type ExpertReviewView struct {
	// ErrorMessage replaces the page body when the expert failed to load.
	ErrorMessage string
	Expert       consultapi.Expert
	Documents    []Document
	ImageURL     string
	Stats        consultapi.CallStats
	// StatsError is shown in place of the call stats when they failed.
	StatsError   string
	Flash        string
	FlashIsError bool
}

// expertReviewCrumbs builds the review page breadcrumbs. The expert detail
// path has no page of its own, so its crumb links to the list.
func expertReviewCrumbs(page PageContext, expert consultapi.Expert) []sharedtemplates.BreadcrumbItem {
	crumbs := sharedtemplates.BuildPathBreadcrumbsWithOptions(page.CurrentPath, page.Loc, sharedtemplates.PathBreadcrumbOptions{
		IncludeRoot:     true,
		RootLabel:       "core.nav.dashboard",
		LabelForSegment: adminSegmentLabel,
		EntityNames:     map[string]string{expert.ID: expert.Name},
	})
	for i := range crumbs {
		if crumbs[i].URL == routepath.Expert(expert.ID) {
			crumbs[i].URL = routepath.Experts
		}
	}
	return crumbs
}

func verificationTone(status string) string {
	switch status {
	case consultapi.VerificationVerified:
		return "good"
	case consultapi.VerificationRejected:
		return "poor"
	default:
		return "pending"
	}
}

// adminSegmentLabel labels known route segments in breadcrumbs.
func adminSegmentLabel(segment string, _ string, loc sharedtemplates.Localizer) string {
	switch segment {
	case "experts":
		return T(loc, "core.nav.experts")
	case "review":
		return T(loc, "experts.review")
	default:
		return segment
	}
}

// ExpertDocuments lists the reviewable documents of expert, resolving
// stored paths against the uploads host.
func ExpertDocuments(expert consultapi.Expert, uploadsBase string) []Document {
	return []Document{
		{LabelKey: "experts.aadhar_card", URL: consultapi.DocumentURL(uploadsBase, expert.AadharCard)},
		{LabelKey: "experts.pan", URL: consultapi.DocumentURL(uploadsBase, expert.PAN)},
		{LabelKey: "experts.verification_video", URL: consultapi.DocumentURL(uploadsBase, expert.VerificationVideo), Video: true},
	}
}
