package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/jaguilar/cobranza-sync/consts"
	"github.com/jaguilar/cobranza-sync/entity"
	"github.com/jaguilar/cobranza-sync/utils"
)

const genericConnectionError = "connection error while registering payment"

// Client delivers single payments to the remote registration endpoint and
// classifies each attempt. Business rejections and transport failures come
// back in the same failure shape: the coordinator queues both.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// readPhoto resolves a receipt photo reference to raw bytes.
	// Defaults to os.ReadFile, replaceable in tests.
	readPhoto func(ref string) ([]byte, error)
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: consts.RemoteTimeoutSec * time.Second,
		},
		readPhoto: os.ReadFile,
	}
}

type registerPaymentPayload struct {
	IDLocal              string  `json:"id_local"`
	Cdgns                string  `json:"cdgns"`
	Ciclo                string  `json:"ciclo"`
	Monto                float64 `json:"monto"`
	ComentariosEjecutivo string  `json:"comentarios_ejecutivo"`
	Tipomov              string  `json:"tipomov"`
	Foto                 *string `json:"foto"`
	FechaValor           string  `json:"fecha_valor"`
	FechaApp             string  `json:"fecha_app"`
	FechaDiaPago         string  `json:"fecha_dia_pago"`
	Latitud              float64 `json:"latitud"`
	Longitud             float64 `json:"longitud"`
}

func (c *Client) buildPayload(record entity.PaymentRecord) registerPaymentPayload {
	monto, _ := record.Amount.Float64()

	return registerPaymentPayload{
		IDLocal:              record.ID,
		Cdgns:                record.CreditNumber,
		Ciclo:                record.Cycle,
		Monto:                monto,
		ComentariosEjecutivo: record.Comments,
		Tipomov:              record.PaymentTypeCode,
		Foto:                 c.resolvePhoto(record),
		FechaValor:           utils.DateShortBack(utils.BusinessValueDate(record.CaptureTimestamp)),
		FechaApp:             utils.DateTimeFullBack(record.CaptureTimestamp),
		FechaDiaPago:         utils.PayDayDateBack(record.PayDayDate),
		Latitud:              record.Latitude,
		Longitud:             record.Longitude,
	}
}

// resolvePhoto loads the receipt photo and base64-encodes it. A missing or
// unreadable photo is logged and the payment is sent without it.
func (c *Client) resolvePhoto(record entity.PaymentRecord) *string {
	if record.ReceiptPhotoRef == "" {
		return nil
	}
	raw, err := c.readPhoto(record.ReceiptPhotoRef)
	if err != nil {
		log.Warnf("[RemoteAPI] Could not resolve receipt photo for payment %s, sending without it: %v", record.ID, err)
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	return &encoded
}

func (c *Client) Submit(ctx context.Context, record entity.PaymentRecord) entity.SubmitResult {
	body, err := json.Marshal(c.buildPayload(record))
	if err != nil {
		return entity.SubmitResult{
			Success:   false,
			PaymentID: record.ID,
			Error:     fmt.Sprintf("failed to encode payment: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+consts.EndpointRegisterPayment, bytes.NewReader(body))
	if err != nil {
		return entity.SubmitResult{
			Success:   false,
			PaymentID: record.ID,
			Error:     fmt.Sprintf("failed to build request: %v", err),
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnf("[RemoteAPI] Payment %s unreachable: %v", record.ID, err)
		return entity.SubmitResult{
			Success:   false,
			PaymentID: record.ID,
			Error:     genericConnectionError,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.SubmitResult{
			Success:   false,
			PaymentID: record.ID,
			Error:     genericConnectionError,
		}
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return entity.SubmitResult{
			Success:   true,
			PaymentID: record.ID,
			Data:      json.RawMessage(respBody),
		}
	}

	log.Warnf("[RemoteAPI] Payment %s rejected with status %d", record.ID, resp.StatusCode)
	return entity.SubmitResult{
		Success:   false,
		PaymentID: record.ID,
		Error:     serverErrorMessage(respBody),
	}
}

// serverErrorMessage surfaces the server-supplied error field when the
// rejection body carries one.
func serverErrorMessage(respBody []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return "server error while registering payment"
}
