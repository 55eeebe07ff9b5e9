package dto

// CreateTransactionRequest entrada para iniciar un pago: el carrito del cliente.
// Los precios se recalculan del catálogo en el servidor; el cliente solo manda ids y cantidades.
type CreateTransactionRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1"`
}

// CreateTransactionResponse datos que el widget de Wompi necesita en el navegador.
type CreateTransactionResponse struct {
	Reference     string `json:"reference"`
	AmountInCents int64  `json:"amountInCents"`
	Currency      string `json:"currency"`
	Signature     string `json:"signature"`
	PublicKey     string `json:"publicKey"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
}

// WompiTransaction transacción embebida en un evento de Wompi.
type WompiTransaction struct {
	ID            string `json:"id"`
	Status        string `json:"status"` // APPROVED | DECLINED | VOIDED | ERROR
	Reference     string `json:"reference"`
	AmountInCents int64  `json:"amount_in_cents"`
}

// WompiEvent cuerpo del webhook transaction.updated de Wompi.
type WompiEvent struct {
	Event string `json:"event"`
	Data  struct {
		Transaction WompiTransaction `json:"transaction"`
	} `json:"data"`
	Timestamp int64 `json:"timestamp"`
	Signature struct {
		Checksum   string   `json:"checksum"`
		Properties []string `json:"properties"`
	} `json:"signature"`
}

// WebhookResponse respuesta al webhook. Ignored indica que el evento no superó
// la verificación de firma y no produjo ninguna mutación.
type WebhookResponse struct {
	Received bool `json:"received"`
	Ignored  bool `json:"ignored,omitempty"`
}
