package response_models

type JobResponse struct {
	JobID           string `json:"jobId"`
	Type            string `json:"type"`
	JobRole         string `json:"jobRole"`
	CompanyGiving   string `json:"companyGiving"`
	JobType         string `json:"jobType"`
	Location        string `json:"location"`
	WhoCanApply     string `json:"whoCanApply"`
	LastDateToApply string `json:"lastDateToApply"`
	RedirectLink    string `json:"redirectLink"`
	RecruiterEmail  string `json:"recruiterEmail,omitempty"`
	Description     string `json:"description"`
	Stipend         string `json:"stipend,omitempty"`
	Duration        string `json:"duration,omitempty"`
	Experience      string `json:"experience,omitempty"`
	Published       bool   `json:"published"`
	CreatedAt       int64  `json:"createdAt"`
	UpdatedAt       int64  `json:"updatedAt"`
}

type ResourceResponse struct {
	ResourceID       string `json:"resourceId"`
	ResourceName     string `json:"resourceName"`
	ShortDescription string `json:"shortDescription"`
	WhatYouGet       string `json:"whatYouGet"`
	DownloadLink     string `json:"downloadLink,omitempty"`
	BannerImage      string `json:"imageBannerLink,omitempty"`
	ResourceFee      int64  `json:"resourceFee"`
	TotalDownloads   int64  `json:"totalDownloads,omitempty"`
	Published        bool   `json:"published"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt"`
}

type KitResponse struct {
	KitID       string `json:"kitId"`
	KitName     string `json:"kitName"`
	Description string `json:"description"`
	KitURL      string `json:"kitUrl,omitempty"`
	KitFee      int64  `json:"kitFee"`
	Published   bool   `json:"published"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}
