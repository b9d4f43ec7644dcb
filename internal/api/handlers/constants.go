package handlers

const (
	providerGoogle = "google"
	providerGitHub = "github"
)
