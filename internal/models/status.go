package models

import "errors"

type QuotationStatus string

const (
	QuotationStatusGenerated QuotationStatus = "generada"
	QuotationStatusSent      QuotationStatus = "enviada"
	QuotationStatusExpired   QuotationStatus = "vencida"
	QuotationStatusCancelled QuotationStatus = "cancelada"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusGenerated, QuotationStatusSent, QuotationStatusExpired, QuotationStatusCancelled:
		return true
	}

	return false
}

type OrderStatus string

const (
	OrderStatusNoResponse      OrderStatus = "sin_respuesta"
	OrderStatusAccepted        OrderStatus = "aceptado"
	OrderStatusAwaitingPayment OrderStatus = "esperando_pago"
	OrderStatusPaymentReceived OrderStatus = "pago_recibido"
	OrderStatusShipped         OrderStatus = "enviado"
	OrderStatusReceived        OrderStatus = "recibido"
	OrderStatusRejected        OrderStatus = "rechazado"
	OrderStatusModifiedAndSent OrderStatus = "modificado_y_enviado"
)

var postPayment = map[OrderStatus]bool{
	OrderStatusPaymentReceived: true,
	OrderStatusShipped:         true,
	OrderStatusReceived:        true,
	OrderStatusModifiedAndSent: true,
}

// PostPaymentStatuses returns the statuses reachable only after payment, in display order.
func PostPaymentStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPaymentReceived, OrderStatusShipped, OrderStatusReceived, OrderStatusModifiedAndSent}
}

func (s OrderStatus) IsPostPayment() bool {
	return postPayment[s]
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNoResponse, OrderStatusAccepted, OrderStatusAwaitingPayment, OrderStatusRejected:
		return true
	}

	return s.IsPostPayment()
}

var (
	ErrPaymentProofRequired = errors.New("payment proof required to enter post-payment status")
	ErrIrreversibleState    = errors.New("cannot leave post-payment status")
	ErrUnknownStatus        = errors.New("unknown order status")
)

type OrderTransition struct {
	From OrderStatus
	To   OrderStatus
	// CommitStock is set on the single transition that first enters post-payment.
	CommitStock bool
	Noop        bool
}

// PlanOrderTransition checks the payment ratchet and decides whether
// moving from -> to must deduct stock.
func PlanOrderTransition(from, to OrderStatus, hasProof bool) (OrderTransition, error) {
	t := OrderTransition{From: from, To: to}

	if !to.Valid() {
		return t, ErrUnknownStatus
	}

	if from == to {
		t.Noop = true
		return t, nil
	}

	if from.IsPostPayment() && !to.IsPostPayment() {
		return t, ErrIrreversibleState
	}

	if to.IsPostPayment() && !hasProof {
		return t, ErrPaymentProofRequired
	}

	t.CommitStock = to.IsPostPayment() && !from.IsPostPayment()

	return t, nil
}
