// Package options derives the ordered, deduplicated list of payment options
// to offer for a given merchant configuration. The derivation is a pure
// function of the allowed source types, the card toggle, and an optional
// capability snapshot; the rank, mapping, and override tables are immutable
// process-wide constants.
package options

import "github.com/siampay/paykit/types"

// PaymentOption identifies one offerable payment method, independent of how
// a UI renders it. Options are coarser than source types: every installment
// provider collapses into Installment, every mobile banking channel into
// MobileBanking. CreditCard is synthetic and not backed by any source type.
type PaymentOption string

const (
	CreditCard         PaymentOption = "credit_card"
	PayNow             PaymentOption = "paynow"
	PromptPay          PaymentOption = "promptpay"
	TrueMoneyJumpApp   PaymentOption = "truemoney_jumpapp"
	TrueMoney          PaymentOption = "truemoney"
	MobileBanking      PaymentOption = "mobile_banking"
	InternetBanking    PaymentOption = "internet_banking"
	Alipay             PaymentOption = "alipay"
	Installment        PaymentOption = "installment"
	OCBCDigital        PaymentOption = "ocbc_digital"
	RabbitLinePay      PaymentOption = "rabbit_linepay"
	ShopeePay          PaymentOption = "shopeepay"
	ShopeePayJumpApp   PaymentOption = "shopeepay_jumpapp"
	AlipayCN           PaymentOption = "alipay_cn"
	AlipayHK           PaymentOption = "alipay_hk"
	Atome              PaymentOption = "atome"
	Boost              PaymentOption = "boost"
	CitiPoints         PaymentOption = "citi_points"
	Conbini            PaymentOption = "conbini"
	DANA               PaymentOption = "dana"
	DuitNowOBW         PaymentOption = "duitnow_obw"
	DuitNowQR          PaymentOption = "duitnow_qr"
	FPX                PaymentOption = "fpx"
	GCash              PaymentOption = "gcash"
	GrabPay            PaymentOption = "grabpay"
	GrabPayRMS         PaymentOption = "grabpay_rms"
	KakaoPay           PaymentOption = "kakaopay"
	MaybankQRPay       PaymentOption = "maybank_qr"
	NetBanking         PaymentOption = "net_banking"
	PayEasy            PaymentOption = "pay_easy"
	PayPay             PaymentOption = "paypay"
	TescoLotus         PaymentOption = "tesco_lotus"
	TouchNGoAlipayPlus PaymentOption = "touch_n_go_alipay_plus"
	TouchNGo           PaymentOption = "touch_n_go"
	WeChat             PaymentOption = "wechat"
)

func (o PaymentOption) String() string {
	return string(o)
}

// DefaultRank is the curated presentation order. It is a product priority
// list, not an alphabet: high-volume methods come first, the long tail
// follows in display-name order. Every PaymentOption has exactly one entry;
// a missing entry is a configuration defect the deriver logs and recovers
// from by appending the option at the end.
var DefaultRank = []PaymentOption{
	CreditCard,
	PayNow,
	PromptPay,
	TrueMoneyJumpApp,
	TrueMoney,
	MobileBanking,
	InternetBanking,
	Alipay,
	Installment,
	OCBCDigital,
	RabbitLinePay,
	ShopeePay,
	ShopeePayJumpApp,
	AlipayCN,
	AlipayHK,
	Atome,
	Boost,
	CitiPoints,
	Conbini,
	DANA,
	DuitNowOBW,
	DuitNowQR,
	FPX,
	GCash,
	GrabPay,
	GrabPayRMS,
	KakaoPay,
	MaybankQRPay,
	NetBanking,
	PayEasy,
	PayPay,
	TescoLotus,
	TouchNGoAlipayPlus, // TNG eWallet
	TouchNGo,
	WeChat,
}

// Alphabetical lists every option ordered by display name. TNG eWallet
// sorts before Touch 'n Go, and TrueMoney before TrueMoney Wallet, which is
// why this is a declared list rather than a sort on identifiers.
var Alphabetical = []PaymentOption{
	Alipay,
	AlipayCN,
	AlipayHK,
	Atome,
	Boost,
	CitiPoints,
	Conbini,
	CreditCard,
	DANA,
	DuitNowOBW,
	DuitNowQR,
	FPX,
	GCash,
	GrabPay,
	GrabPayRMS,
	Installment,
	InternetBanking,
	KakaoPay,
	MaybankQRPay,
	MobileBanking,
	NetBanking,
	OCBCDigital,
	PayEasy,
	PayNow,
	PayPay,
	PromptPay,
	RabbitLinePay,
	ShopeePay,
	ShopeePayJumpApp,
	TescoLotus,
	TouchNGoAlipayPlus, // TNG eWallet
	TouchNGo,
	TrueMoneyJumpApp, // TrueMoney
	TrueMoney,        // TrueMoney Wallet
	WeChat,
}

// OverridePair declares that Winner supersedes Loser when both survive the
// source-type mapping. Pairs are the same product line in two generations;
// offering both would show the user a duplicate.
type OverridePair struct {
	Loser  PaymentOption
	Winner PaymentOption
}

// DefaultOverridePairs lists the active supersessions.
var DefaultOverridePairs = []OverridePair{
	{Loser: TrueMoney, Winner: TrueMoneyJumpApp},
	{Loser: ShopeePay, Winner: ShopeePayJumpApp},
}

// DefaultSourceMapping maps each source type to at most one payment option.
// Source types absent from this table (barcode_alipay and anything unknown)
// produce no option and are dropped silently.
var DefaultSourceMapping = map[types.SourceType]PaymentOption{
	types.SourceTypeInternetBankingBAY: InternetBanking,
	types.SourceTypeInternetBankingBBL: InternetBanking,

	types.SourceTypeMobileBankingBAY:     MobileBanking,
	types.SourceTypeMobileBankingBBL:     MobileBanking,
	types.SourceTypeMobileBankingKBank:   MobileBanking,
	types.SourceTypeMobileBankingKTB:     MobileBanking,
	types.SourceTypeMobileBankingSCB:     MobileBanking,
	types.SourceTypeMobileBankingOCBCPAO: MobileBanking,
	types.SourceTypeOCBCDigital:          OCBCDigital,

	types.SourceTypeInstallmentBAY:            Installment,
	types.SourceTypeInstallmentBBL:            Installment,
	types.SourceTypeInstallmentFirstChoice:    Installment,
	types.SourceTypeInstallmentKBank:          Installment,
	types.SourceTypeInstallmentKTC:            Installment,
	types.SourceTypeInstallmentMBB:            Installment,
	types.SourceTypeInstallmentSCB:            Installment,
	types.SourceTypeInstallmentTTB:            Installment,
	types.SourceTypeInstallmentUOB:            Installment,
	types.SourceTypeInstallmentWLBBAY:         Installment,
	types.SourceTypeInstallmentWLBBBL:         Installment,
	types.SourceTypeInstallmentWLBFirstChoice: Installment,
	types.SourceTypeInstallmentWLBKBank:       Installment,
	types.SourceTypeInstallmentWLBKTC:         Installment,
	types.SourceTypeInstallmentWLBSCB:         Installment,
	types.SourceTypeInstallmentWLBTTB:         Installment,
	types.SourceTypeInstallmentWLBUOB:         Installment,

	types.SourceTypeAlipay:             Alipay,
	types.SourceTypeAlipayCN:           AlipayCN,
	types.SourceTypeAlipayHK:           AlipayHK,
	types.SourceTypeAtome:              Atome,
	types.SourceTypeBillPaymentTesco:   TescoLotus,
	types.SourceTypeBoost:              Boost,
	types.SourceTypeDANA:               DANA,
	types.SourceTypeDuitNowOBW:         DuitNowOBW,
	types.SourceTypeDuitNowQR:          DuitNowQR,
	types.SourceTypeEContext:           Conbini,
	types.SourceTypeFPX:                FPX,
	types.SourceTypeGCash:              GCash,
	types.SourceTypeGrabPay:            GrabPay,
	types.SourceTypeGrabPayRMS:         GrabPayRMS,
	types.SourceTypeKakaoPay:           KakaoPay,
	types.SourceTypeMaybankQRPay:       MaybankQRPay,
	types.SourceTypePayNow:             PayNow,
	types.SourceTypePayPay:             PayPay,
	types.SourceTypePointsCiti:         CitiPoints,
	types.SourceTypePromptPay:          PromptPay,
	types.SourceTypeRabbitLinePay:      RabbitLinePay,
	types.SourceTypeShopeePay:          ShopeePay,
	types.SourceTypeShopeePayJumpApp:   ShopeePayJumpApp,
	types.SourceTypeTouchNGo:           TouchNGo,
	types.SourceTypeTouchNGoAlipayPlus: TouchNGoAlipayPlus,
	types.SourceTypeTrueMoneyWallet:    TrueMoney,
	types.SourceTypeTrueMoneyJumpApp:   TrueMoneyJumpApp,
	types.SourceTypeWeChat:             WeChat,
}
