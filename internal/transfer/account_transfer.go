package transfer

type ConnectAccountRequest struct {
	Platform    string `json:"platform"`
	AccountName string `json:"account_name"`
}

type CreatePostRequest struct {
	AccountID int64  `json:"account_id"`
	Content   string `json:"content"`
}

type UpdatePostRequest struct {
	Content  *string `json:"content"`
	Likes    *int    `json:"likes"`
	Comments *int    `json:"comments"`
	Shares   *int    `json:"shares"`
}

type AnalyzeRequest struct {
	Content string `json:"content"`
}

type PredictEngagementRequest struct {
	Content  string `json:"content"`
	Platform string `json:"platform"`
}
