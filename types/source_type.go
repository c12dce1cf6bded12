package types

import "strings"

// SourceType identifies a non-card payment method on the wire.
//
// The set of values the API may return grows over time; values not listed
// below still round-trip through decode/encode unchanged. Use IsKnown to
// check whether a value is one this SDK models.
type SourceType string

const (
	SourceTypeInternetBankingBAY SourceType = "internet_banking_bay"
	SourceTypeInternetBankingBBL SourceType = "internet_banking_bbl"

	SourceTypeMobileBankingBAY     SourceType = "mobile_banking_bay"
	SourceTypeMobileBankingBBL     SourceType = "mobile_banking_bbl"
	SourceTypeMobileBankingKBank   SourceType = "mobile_banking_kbank"
	SourceTypeMobileBankingKTB     SourceType = "mobile_banking_ktb"
	SourceTypeMobileBankingSCB     SourceType = "mobile_banking_scb"
	SourceTypeMobileBankingOCBCPAO SourceType = "mobile_banking_ocbc_pao"
	SourceTypeOCBCDigital          SourceType = "mobile_banking_ocbc"

	SourceTypeInstallmentBAY         SourceType = "installment_bay"
	SourceTypeInstallmentBBL         SourceType = "installment_bbl"
	SourceTypeInstallmentFirstChoice SourceType = "installment_first_choice"
	SourceTypeInstallmentKBank       SourceType = "installment_kbank"
	SourceTypeInstallmentKTC         SourceType = "installment_ktc"
	SourceTypeInstallmentMBB         SourceType = "installment_mbb"
	SourceTypeInstallmentSCB         SourceType = "installment_scb"
	SourceTypeInstallmentTTB         SourceType = "installment_ttb"
	SourceTypeInstallmentUOB         SourceType = "installment_uob"

	SourceTypeInstallmentWLBBAY         SourceType = "installment_wlb_bay"
	SourceTypeInstallmentWLBBBL         SourceType = "installment_wlb_bbl"
	SourceTypeInstallmentWLBFirstChoice SourceType = "installment_wlb_first_choice"
	SourceTypeInstallmentWLBKBank       SourceType = "installment_wlb_kbank"
	SourceTypeInstallmentWLBKTC         SourceType = "installment_wlb_ktc"
	SourceTypeInstallmentWLBSCB         SourceType = "installment_wlb_scb"
	SourceTypeInstallmentWLBTTB         SourceType = "installment_wlb_ttb"
	SourceTypeInstallmentWLBUOB         SourceType = "installment_wlb_uob"

	SourceTypeAlipay             SourceType = "alipay"
	SourceTypeAlipayCN           SourceType = "alipay_cn"
	SourceTypeAlipayHK           SourceType = "alipay_hk"
	SourceTypeAtome              SourceType = "atome"
	SourceTypeBarcodeAlipay      SourceType = "barcode_alipay"
	SourceTypeBillPaymentTesco   SourceType = "bill_payment_tesco_lotus"
	SourceTypeBoost              SourceType = "boost"
	SourceTypeDANA               SourceType = "dana"
	SourceTypeDuitNowOBW         SourceType = "duitnow_obw"
	SourceTypeDuitNowQR          SourceType = "duitnow_qr"
	SourceTypeEContext           SourceType = "econtext"
	SourceTypeFPX                SourceType = "fpx"
	SourceTypeGCash              SourceType = "gcash"
	SourceTypeGrabPay            SourceType = "grabpay"
	SourceTypeGrabPayRMS         SourceType = "grabpay_rms"
	SourceTypeKakaoPay           SourceType = "kakaopay"
	SourceTypeMaybankQRPay       SourceType = "maybank_qr"
	SourceTypePayNow             SourceType = "paynow"
	SourceTypePayPay             SourceType = "paypay"
	SourceTypePointsCiti         SourceType = "points_citi"
	SourceTypePromptPay          SourceType = "promptpay"
	SourceTypeRabbitLinePay      SourceType = "rabbit_linepay"
	SourceTypeShopeePay          SourceType = "shopeepay"
	SourceTypeShopeePayJumpApp   SourceType = "shopeepay_jumpapp"
	SourceTypeTouchNGo           SourceType = "touch_n_go"
	SourceTypeTouchNGoAlipayPlus SourceType = "touch_n_go_alipay_plus"
	SourceTypeTrueMoneyWallet    SourceType = "truemoney"
	SourceTypeTrueMoneyJumpApp   SourceType = "truemoney_jumpapp"
	SourceTypeWeChat             SourceType = "wechat_pay"
)

// AllSourceTypes lists every source type this SDK models, in declaration
// order.
var AllSourceTypes = []SourceType{
	SourceTypeInternetBankingBAY,
	SourceTypeInternetBankingBBL,
	SourceTypeMobileBankingBAY,
	SourceTypeMobileBankingBBL,
	SourceTypeMobileBankingKBank,
	SourceTypeMobileBankingKTB,
	SourceTypeMobileBankingSCB,
	SourceTypeMobileBankingOCBCPAO,
	SourceTypeOCBCDigital,
	SourceTypeInstallmentBAY,
	SourceTypeInstallmentBBL,
	SourceTypeInstallmentFirstChoice,
	SourceTypeInstallmentKBank,
	SourceTypeInstallmentKTC,
	SourceTypeInstallmentMBB,
	SourceTypeInstallmentSCB,
	SourceTypeInstallmentTTB,
	SourceTypeInstallmentUOB,
	SourceTypeInstallmentWLBBAY,
	SourceTypeInstallmentWLBBBL,
	SourceTypeInstallmentWLBFirstChoice,
	SourceTypeInstallmentWLBKBank,
	SourceTypeInstallmentWLBKTC,
	SourceTypeInstallmentWLBSCB,
	SourceTypeInstallmentWLBTTB,
	SourceTypeInstallmentWLBUOB,
	SourceTypeAlipay,
	SourceTypeAlipayCN,
	SourceTypeAlipayHK,
	SourceTypeAtome,
	SourceTypeBarcodeAlipay,
	SourceTypeBillPaymentTesco,
	SourceTypeBoost,
	SourceTypeDANA,
	SourceTypeDuitNowOBW,
	SourceTypeDuitNowQR,
	SourceTypeEContext,
	SourceTypeFPX,
	SourceTypeGCash,
	SourceTypeGrabPay,
	SourceTypeGrabPayRMS,
	SourceTypeKakaoPay,
	SourceTypeMaybankQRPay,
	SourceTypePayNow,
	SourceTypePayPay,
	SourceTypePointsCiti,
	SourceTypePromptPay,
	SourceTypeRabbitLinePay,
	SourceTypeShopeePay,
	SourceTypeShopeePayJumpApp,
	SourceTypeTouchNGo,
	SourceTypeTouchNGoAlipayPlus,
	SourceTypeTrueMoneyWallet,
	SourceTypeTrueMoneyJumpApp,
	SourceTypeWeChat,
}

var knownSourceTypes = func() map[SourceType]struct{} {
	m := make(map[SourceType]struct{}, len(AllSourceTypes))
	for _, st := range AllSourceTypes {
		m[st] = struct{}{}
	}
	return m
}()

// IsKnown reports whether the source type is one this SDK models. Unknown
// values are still valid SourceTypes; they carry the raw wire string.
func (st SourceType) IsKnown() bool {
	_, ok := knownSourceTypes[st]
	return ok
}

// IsInstallment reports whether the source type is an installment provider,
// including white-label variants.
func (st SourceType) IsInstallment() bool {
	return strings.HasPrefix(string(st), "installment_")
}

// IsInternetBanking reports whether the source type is an internet banking
// channel.
func (st SourceType) IsInternetBanking() bool {
	return strings.HasPrefix(string(st), "internet_banking_")
}

// IsMobileBanking reports whether the source type is a mobile banking
// channel.
func (st SourceType) IsMobileBanking() bool {
	return strings.HasPrefix(string(st), "mobile_banking_")
}

func (st SourceType) String() string {
	return string(st)
}
