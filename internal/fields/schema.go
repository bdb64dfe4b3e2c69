// Package fields defines the fixed Letter of Credit field vocabulary.
// It is the single source of truth for extraction prompts, completeness
// counts, export columns, and multilingual labels.
package fields

// FieldType hints how a field value is shaped.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeDate     FieldType = "date"
	TypeSelect   FieldType = "select"
	TypeCheckbox FieldType = "checkbox"
)

// Def describes a single L/C field.
type Def struct {
	Key      string
	EN       string
	AR       string
	ES       string
	IT       string
	Type     FieldType
	Options  []string
	Section  string
	Required bool
}

// Label returns the field label in the requested language, falling back
// to English.
func (d *Def) Label(lang string) string {
	switch lang {
	case "ar":
		if d.AR != "" {
			return d.AR
		}
	case "es":
		if d.ES != "" {
			return d.ES
		}
	case "it":
		if d.IT != "" {
			return d.IT
		}
	}
	return d.EN
}

// Section groups related fields on the application form.
type Section struct {
	Key    string
	EN     string
	AR     string
	ES     string
	IT     string
	Fields []Def
}

// Label returns the section label in the requested language.
func (s *Section) Label(lang string) string {
	switch lang {
	case "ar":
		if s.AR != "" {
			return s.AR
		}
	case "es":
		if s.ES != "" {
			return s.ES
		}
	case "it":
		if s.IT != "" {
			return s.IT
		}
	}
	return s.EN
}

// Sections is the full ordered form definition.
var Sections = []Section{
	{
		Key: "basic_information",
		EN:  "Basic Information", AR: "المعلومات الأساسية", ES: "Información Básica", IT: "Informazioni di Base",
		Fields: []Def{
			{Key: "date", EN: "Date", AR: "التاريخ", ES: "Fecha", IT: "Data", Type: TypeDate},
			{Key: "lc_number", EN: "L/C Number", AR: "رقم الإعتماد", ES: "Número L/C", IT: "Numero L/C", Required: true},
			{Key: "branch_reference", EN: "Branch Reference", AR: "إشاري الفرع", ES: "Ref. Sucursal", IT: "Rif. Filiale"},
			{Key: "branch_code", EN: "Branch Code", AR: "رقم الفرع", ES: "Código Sucursal", IT: "Codice Filiale"},
			{Key: "year", EN: "Year", AR: "السنة", ES: "Año", IT: "Anno"},
			{Key: "cbl_key", EN: "CBL Key", AR: "مفتاح مصرف ليبيا المركزي", ES: "Clave CBL", IT: "Chiave CBL"},
		},
	},
	{
		Key: "account_information",
		EN:  "Account Information", AR: "معلومات الحساب", ES: "Información de Cuenta", IT: "Informazioni Conto",
		Fields: []Def{
			{Key: "for_account_of", EN: "For Account of", AR: "لحساب", ES: "A Cuenta de", IT: "Per Conto di"},
			{Key: "account_number", EN: "Account Number", AR: "رقم الحساب", ES: "Número de Cuenta", IT: "Numero Conto"},
			{Key: "applicant_name", EN: "Applicant Name", AR: "اسم فاتح الإعتماد", ES: "Nombre del Solicitante", IT: "Nome del Richiedente", Required: true},
			{Key: "applicant_address", EN: "Applicant Address", AR: "عنوان فاتح الإعتماد", ES: "Dirección del Solicitante", IT: "Indirizzo del Richiedente", Type: TypeTextarea},
			{Key: "telephone", EN: "Telephone", AR: "رقم الهاتف", ES: "Teléfono", IT: "Telefono"},
			{Key: "fax", EN: "Fax", AR: "الفاكس", ES: "Fax", IT: "Fax"},
		},
	},
	{
		Key: "beneficiary_information",
		EN:  "Beneficiary Information", AR: "معلومات المستفيد", ES: "Información del Beneficiario", IT: "Informazioni Beneficiario",
		Fields: []Def{
			{Key: "beneficiary_name", EN: "Beneficiary Name and Address", AR: "اسم وعناوين المستفيد", ES: "Nombre y Dirección del Beneficiario", IT: "Nome e Indirizzo Beneficiario", Type: TypeTextarea, Required: true},
			{Key: "beneficiary_contact", EN: "Beneficiary Contact (Tele-Fax)", AR: "رقم الهاتف والفاكس للمستفيد", ES: "Contacto Beneficiario", IT: "Contatto Beneficiario"},
			{Key: "beneficiary_bank", EN: "Beneficiary Bank", AR: "مصرف المستفيد بالخارج", ES: "Banco del Beneficiario", IT: "Banca Beneficiario"},
			{Key: "beneficiary_bank_swift", EN: "Beneficiary Bank SWIFT/BIC", AR: "رمز سويفت/بيك لمصرف المستفيد", ES: "SWIFT/BIC Banco Beneficiario", IT: "SWIFT/BIC Banca Beneficiario"},
			{Key: "available_at_correspondent", EN: "Available at Correspondent Bank", AR: "متاح لدى مراسلنا الذي", ES: "Disponible en Banco Corresponsal", IT: "Disponibile presso Banca Corrispondente"},
		},
	},
	{
		Key: "credit_amount_information",
		EN:  "Credit Amount", AR: "قيمة الإعتماد", ES: "Importe del Crédito", IT: "Importo del Credito",
		Fields: []Def{
			{Key: "amount_in_figures", EN: "Amount in Figures", AR: "قيمة الإعتماد بالأرقام", ES: "Importe en Cifras", IT: "Importo in Cifre", Required: true},
			{Key: "amount_in_letters", EN: "Amount in Letters", AR: "المبلغ بالحروف", ES: "Importe en Letras", IT: "Importo in Lettere"},
			{Key: "currency_code", EN: "Currency Code", AR: "نوع العملة", ES: "Código Moneda", IT: "Codice Valuta", Type: TypeSelect, Options: []string{"USD", "EUR", "GBP", "LYD", "Other"}},
			{Key: "percentage_tolerance", EN: "Percentage Tolerance", AR: "نسبة الزيادة والنقصان", ES: "Porcentaje de Tolerancia", IT: "Percentuale di Tolleranza"},
			{Key: "max_credit_amount", EN: "Maximum Credits Amount", AR: "الحد الأقصى للاعتماد", ES: "Importe Máximo", IT: "Importo Massimo"},
		},
	},
	{
		Key: "goods_services_information",
		EN:  "Goods / Services", AR: "البضاعة أو الخدمات", ES: "Bienes / Servicios", IT: "Merci / Servizi",
		Fields: []Def{
			{Key: "goods_description", EN: "Description of Goods or Services", AR: "وصف البضاعة أو الخدمات", ES: "Descripción de Bienes o Servicios", IT: "Descrizione di Merci o Servizi", Type: TypeTextarea, Required: true},
			{Key: "proforma_invoice_number", EN: "Proforma Invoice / Contract No.", AR: "حسب الفاتورة المبدئية/العقد/رقم الشراء", ES: "Factura Proforma / Contrato", IT: "Fattura Proforma / Contratto"},
			{Key: "country_of_origin", EN: "Country of Origin", AR: "بلد المنشأ", ES: "País de Origen", IT: "Paese di Origine"},
			{Key: "hs_code", EN: "HS Code", AR: "رمز النظام المنسق (HS)", ES: "Código HS", IT: "Codice HS"},
		},
	},
	{
		Key: "lc_type_conditions",
		EN:  "L/C Type & Conditions", AR: "نوع وشروط الاعتماد", ES: "Tipo y Condiciones L/C", IT: "Tipo e Condizioni L/C",
		Fields: []Def{
			{Key: "lc_type", EN: "L/C Type", AR: "نوع الاعتماد", ES: "Tipo L/C", IT: "Tipo L/C", Type: TypeSelect, Options: []string{"Documentary Letter of Credit", "Standby Letter of Credit"}},
			{Key: "revolving", EN: "Revolving", AR: "دائري", ES: "Rotativo", IT: "Rotativo", Type: TypeSelect, Options: []string{"Yes", "No"}},
			{Key: "irrevocable", EN: "Irrevocable", AR: "غير قابل للإلغاء", ES: "Irrevocable", IT: "Irrevocabile", Type: TypeSelect, Options: []string{"Yes", "No"}},
			{Key: "transferable", EN: "Transferable", AR: "قابل للتحويل", ES: "Transferible", IT: "Trasferibile", Type: TypeSelect, Options: []string{"Yes", "No"}},
			{Key: "confirmed", EN: "Confirmed", AR: "معزز", ES: "Confirmado", IT: "Confermato", Type: TypeSelect, Options: []string{"Yes", "No"}},
		},
	},
	{
		Key: "shipment_details",
		EN:  "Shipment Details", AR: "تفاصيل الشحن", ES: "Detalles de Envío", IT: "Dettagli Spedizione",
		Fields: []Def{
			{Key: "place_of_receipt", EN: "Place of Taking Charge/Receipt", AR: "مكان الشحن أو التسليم", ES: "Lugar de Recepción", IT: "Luogo di Presa in Carico"},
			{Key: "port_loading", EN: "Port of Loading / Airport of Departure", AR: "ميناء/مطار الشحن", ES: "Puerto de Carga", IT: "Porto di Carico"},
			{Key: "port_destination", EN: "Port of Destination / Airport of Destination", AR: "إلى ميناء/مطار الوصول", ES: "Puerto de Destino", IT: "Porto di Destinazione"},
			{Key: "latest_shipment_date", EN: "Latest Date of Shipment", AR: "آخر تاريخ للشحن", ES: "Fecha Límite de Envío", IT: "Data Limite Spedizione", Type: TypeDate},
			{Key: "partial_shipment", EN: "Partial Shipment", AR: "الشحن الجزئي", ES: "Envío Parcial", IT: "Spedizione Parziale", Type: TypeSelect, Options: []string{"Allowed", "Not Allowed"}},
			{Key: "transshipment", EN: "Transshipment", AR: "تغيير وسيلة الشحن", ES: "Transbordo", IT: "Trasbordo", Type: TypeSelect, Options: []string{"Allowed", "Not Allowed"}},
			{Key: "transportation_by", EN: "Transportation By", AR: "بواسطة", ES: "Transporte Por", IT: "Trasporto Via"},
		},
	},
	{
		Key: "shipment_delivery_terms",
		EN:  "Delivery Terms", AR: "شروط التسليم", ES: "Términos de Entrega", IT: "Termini di Consegna",
		Fields: []Def{
			{Key: "price_delivery_term", EN: "Price/Delivery Term (Incoterm)", AR: "شرط السعر والتسليم", ES: "Incoterm", IT: "Incoterm", Type: TypeSelect, Options: []string{"FOB", "CFR", "CIF", "CPT", "CIP", "Ex Works"}},
			{Key: "named_place_port", EN: "Named Place/Port", AR: "المكان/الميناء المحدد", ES: "Lugar/Puerto Designado", IT: "Luogo/Porto Designato"},
		},
	},
	{
		Key: "required_documents",
		EN:  "Required Documents", AR: "المستندات المطلوبة", ES: "Documentos Requeridos", IT: "Documenti Richiesti",
		Fields: []Def{
			{Key: "bills_of_lading", EN: "Full set of clean on board shipping Bills of Lading", AR: "مجموعة كاملة من بوليصات الشحن", ES: "Conocimientos de Embarque", IT: "Polizze di Carico", Type: TypeCheckbox},
			{Key: "airway_bill", EN: "Airway Bill", AR: "بوليصة شحن جوي", ES: "Guía Aérea", IT: "Lettera di Vettura Aerea", Type: TypeCheckbox},
			{Key: "roadway_bill", EN: "Roadway Bill", AR: "بوليصة شحن بري", ES: "Carta de Porte", IT: "Lettera di Vettura", Type: TypeCheckbox},
			{Key: "commercial_invoice", EN: "Commercial Invoice", AR: "فاتورة تجارية", ES: "Factura Comercial", IT: "Fattura Commerciale", Type: TypeCheckbox},
			{Key: "certificate_of_origin", EN: "Certificate of Origin", AR: "شهادة منشأ", ES: "Certificado de Origen", IT: "Certificato di Origine", Type: TypeCheckbox},
			{Key: "insurance_certificate", EN: "Insurance Certificate", AR: "شهادة تأمين", ES: "Certificado de Seguro", IT: "Certificato di Assicurazione", Type: TypeCheckbox},
			{Key: "packing_list", EN: "Packing List", AR: "قائمة التعبئة", ES: "Lista de Empaque", IT: "Lista di Imballaggio", Type: TypeCheckbox},
			{Key: "inspection_certificate", EN: "Inspection Certificate", AR: "شهادة تفتيش", ES: "Certificado de Inspección", IT: "Certificato di Ispezione", Type: TypeCheckbox},
			{Key: "other_documents", EN: "Other Documents", AR: "مستندات أخرى", ES: "Otros Documentos", IT: "Altri Documenti", Type: TypeTextarea},
		},
	},
	{
		Key: "payment_conditions",
		EN:  "Payment Conditions", AR: "شروط الدفع", ES: "Condiciones de Pago", IT: "Condizioni di Pagamento",
		Fields: []Def{
			{Key: "payment_terms", EN: "Payment Terms", AR: "شروط الدفع", ES: "Términos de Pago", IT: "Termini di Pagamento"},
			{Key: "banking_charges", EN: "Banking Charges Outside Libya", AR: "عمولات مصرفية خارج ليبيا", ES: "Gastos Bancarios fuera de Libia", IT: "Spese Bancarie fuori dalla Libia"},
		},
	},
	{
		Key: "expiry_information",
		EN:  "Expiry Information", AR: "معلومات انتهاء الصلاحية", ES: "Información de Vencimiento", IT: "Informazioni Scadenza",
		Fields: []Def{
			{Key: "expiry_date", EN: "Expiry Date", AR: "تاريخ انتهاء الصلاحية", ES: "Fecha de Vencimiento", IT: "Data di Scadenza", Type: TypeDate},
			{Key: "place_of_expiry", EN: "Place of Expiry", AR: "مكان انتهاء الصلاحية", ES: "Lugar de Vencimiento", IT: "Luogo di Scadenza"},
		},
	},
	{
		Key: "additional_conditions",
		EN:  "Additional Conditions", AR: "شروط أخرى", ES: "Condiciones Adicionales", IT: "Condizioni Aggiuntive",
		Fields: []Def{
			{Key: "additional_conditions", EN: "Additional Conditions", AR: "شروط أخرى", ES: "Condiciones Adicionales", IT: "Condizioni Aggiuntive", Type: TypeTextarea},
		},
	},
	{
		Key: "compliance_legal",
		EN:  "Compliance & Legal", AR: "الامتثال والقانون", ES: "Cumplimiento y Legal", IT: "Conformità e Legale",
		Fields: []Def{
			{Key: "legal_representative_name", EN: "Legal Representative Name", AR: "اسم الممثل القانوني", ES: "Nombre del Representante Legal", IT: "Nome del Rappresentante Legale"},
			{Key: "passport_number", EN: "Passport Number", AR: "رقم جواز السفر", ES: "Número de Pasaporte", IT: "Numero Passaporto"},
			{Key: "national_id_number", EN: "National ID Number", AR: "الرقم الوطني", ES: "Número de Identidad Nacional", IT: "Numero Documento Identità"},
			{Key: "company_name", EN: "Company Name", AR: "اسم الشركة", ES: "Nombre de la Empresa", IT: "Nome Azienda"},
			{Key: "company_registration_number", EN: "Company Registration Number", AR: "رقم تسجيل الشركة", ES: "Número de Registro", IT: "Numero Registrazione"},
			{Key: "company_address", EN: "Company Address", AR: "عنوان الشركة", ES: "Dirección de la Empresa", IT: "Indirizzo Azienda", Type: TypeTextarea},
			{Key: "company_license_number", EN: "Company License Number", AR: "رقم رخصة الشركة", ES: "Número de Licencia", IT: "Numero Licenza"},
			{Key: "chamber_of_commerce_registration", EN: "Chamber of Commerce Registration", AR: "تسجيل الغرفة التجارية", ES: "Registro Cámara de Comercio", IT: "Registrazione Camera di Commercio"},
			{Key: "authorized_signatories", EN: "Authorized Signatories", AR: "المخولين بالتوقيع", ES: "Firmantes Autorizados", IT: "Firmatari Autorizzati", Type: TypeTextarea},
		},
	},
	{
		Key: "financial_information",
		EN:  "Financial Information", AR: "المعلومات المالية", ES: "Información Financiera", IT: "Informazioni Finanziarie",
		Fields: []Def{
			{Key: "current_account_balance_coverage", EN: "Current Account Balance Coverage", AR: "تغطية رصيد الحساب الجاري", ES: "Cobertura de Saldo", IT: "Copertura Saldo"},
			{Key: "foreign_currency_tax_coverage", EN: "Foreign Currency Tax Coverage", AR: "تغطية ضريبة النقد الأجنبي", ES: "Cobertura Impuesto Moneda Extranjera", IT: "Copertura Fiscale Valuta Estera"},
			{Key: "insurance_coverage", EN: "Insurance Coverage", AR: "تغطية التأمين", ES: "Cobertura de Seguro", IT: "Copertura Assicurativa"},
		},
	},
	{
		Key: "special_conditions",
		EN:  "Special Conditions", AR: "شروط خاصة", ES: "Condiciones Especiales", IT: "Condizioni Speciali",
		Fields: []Def{
			{Key: "inspection_company_name", EN: "Inspection Company Name", AR: "اسم شركة التفتيش", ES: "Nombre Empresa de Inspección", IT: "Nome Società di Ispezione"},
			{Key: "central_bank_approval", EN: "Central Bank of Libya Approval", AR: "موافقة مصرف ليبيا المركزي", ES: "Aprobación del Banco Central de Libia", IT: "Approvazione Banca Centrale di Libia", Type: TypeCheckbox},
			{Key: "anti_money_laundering_compliance", EN: "Anti-Money Laundering Compliance", AR: "الامتثال لمكافحة غسل الأموال", ES: "Cumplimiento Anti-Lavado", IT: "Conformità Antiriciclaggio", Type: TypeCheckbox},
			{Key: "icc_rules_compliance", EN: "ICC Rules Compliance", AR: "الامتثال لقواعد غرفة التجارة الدولية", ES: "Cumplimiento Reglas ICC", IT: "Conformità Regole ICC", Type: TypeCheckbox},
		},
	},
}

var (
	all    []Def
	byKey  map[string]*Def
	orderedKeys []string
)

func init() {
	for si := range Sections {
		sec := &Sections[si]
		for fi := range sec.Fields {
			f := &sec.Fields[fi]
			f.Section = sec.Key
			if f.Type == "" {
				f.Type = TypeText
			}
			all = append(all, *f)
			orderedKeys = append(orderedKeys, f.Key)
		}
	}
	byKey = make(map[string]*Def, len(all))
	for i := range all {
		byKey[all[i].Key] = &all[i]
	}
}

// All returns every field definition in form order.
func All() []Def {
	out := make([]Def, len(all))
	copy(out, all)
	return out
}

// Keys returns every field key in form order.
func Keys() []string {
	out := make([]string, len(orderedKeys))
	copy(out, orderedKeys)
	return out
}

// Total is the size of the fixed vocabulary, constant across runs.
func Total() int {
	return len(all)
}

// Lookup returns the definition for a field key.
func Lookup(key string) (*Def, bool) {
	d, ok := byKey[key]
	return d, ok
}

// Known reports whether a field key belongs to the vocabulary.
func Known(key string) bool {
	_, ok := byKey[key]
	return ok
}
