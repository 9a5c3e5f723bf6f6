package dto

// NotificationRequest is the body of POST /notifications
type NotificationRequest struct {
	Message string `json:"message" binding:"required,notblank" example:"Acme Corp drive on Friday"`
}

// NotificationSavedResponse keeps the short 'msg' key the portal clients read
type NotificationSavedResponse struct {
	Success bool   `json:"success" example:"true"`
	Msg     string `json:"msg" example:"Notification saved"`
}
