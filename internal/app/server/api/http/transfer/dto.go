package transfer

import "mime/multipart"

type exportExcelInput struct {
	Lang string `query:"lang" default:"ru" doc:"Язык заголовков и статусов: ru или uz"`
}

type importExcelInput struct {
	RawBody multipart.Form
}

type importOutput struct {
	Body importResponse
}

type importResponse struct {
	Message string `json:"message" example:"Imported 3 items"`
}

type exportQRInput struct {
	Body exportQRRequest
}

type exportQRRequest struct {
	DeviceIDs []int `json:"device_ids,omitempty" required:"false" doc:"ID устройств для печати"`
}

// fileOutput - бинарный ответ с именем файла в Content-Disposition
type fileOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func newFileOutput(contentType, name string, data []byte) *fileOutput {
	return &fileOutput{
		ContentType:        contentType,
		ContentDisposition: `attachment; filename="` + name + `"`,
		Body:               data,
	}
}
