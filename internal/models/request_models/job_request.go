package request_models

type UpsertJobRequest struct {
	Type            string `json:"type" binding:"required"`
	JobRole         string `json:"jobRole"`
	CompanyGiving   string `json:"companyGiving"`
	JobType         string `json:"jobType"`
	Location        string `json:"location"`
	WhoCanApply     string `json:"whoCanApply"`
	LastDateToApply string `json:"lastDateToApply"`
	RedirectLink    string `json:"redirectLink"`
	RecruiterEmail  string `json:"recruiterEmail"`
	Description     string `json:"description"`
	Stipend         string `json:"stipend"`
	Duration        string `json:"duration"`
	Experience      string `json:"experience"`
	Published       bool   `json:"published"`
}

type UpsertResourceRequest struct {
	ResourceName     string `json:"resourceName" binding:"required"`
	ShortDescription string `json:"shortDescription"`
	WhatYouGet       string `json:"whatYouGet"`
	DownloadLink     string `json:"downloadLink"`
	BannerImage      string `json:"imageBannerLink"`
	ResourceFee      int64  `json:"resourceFee"`
	Published        bool   `json:"published"`
}

type UpsertKitRequest struct {
	KitName     string `json:"kitName" binding:"required"`
	Description string `json:"description"`
	KitURL      string `json:"kitUrl"`
	KitFee      int64  `json:"kitFee"`
	Published   bool   `json:"published"`
}
