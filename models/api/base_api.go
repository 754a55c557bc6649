package apimodels

type Response struct {
	Status  string      `json:"status"`            //処理結果 fail/success
	Message string      `json:"message,omitempty"` //エラーメッセージ
	Data    interface{} `json:"data,omitempty"`    //レスポンスデータ
}

type ScrollerResponse struct {
	Response
	RowCount  int `json:"row_count"`  //総件数
	PageCount int `json:"page_count"` //総ページ数
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount, pageCount int) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount:  rowCount,
		PageCount: pageCount,
	}
}
