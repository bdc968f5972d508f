package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// OrderDispatcher собирает исходящую ссылку внешнего мессенджера
// с URL-кодированным текстом заказа.
type OrderDispatcher interface {
	OrderLink(summaryText string) string
}

// ImagesInfra загружает изображение продукта в объектное хранилище
// и убирает осиротевшие объекты при откате.
type ImagesInfra interface {
	UploadImage(ctx context.Context, productName string, image *ProductImage) (string, error)
	CleanupImage(key string)
}
