// Package cms extracts structured data from CMS (Commissioning/Maintenance
// Service) report PDFs and fills it into SIF (Service Inspection Form)
// AcroForm templates.
package cms

// ReportData holds the fields a CMS commissioning report typically carries.
// Empty strings mean the field was not found in the report text.
type ReportData struct {
	// Basic information
	WindFarm        string `json:"wind_farm,omitempty"`
	TurbineNumber   string `json:"turbine_number,omitempty"`
	TurbineType     string `json:"turbine_type,omitempty"`
	Location        string `json:"location,omitempty"`
	ServiceLifeYear string `json:"service_life_year,omitempty"`

	// Personnel
	Technicians    string `json:"technicians,omitempty"`
	ServiceManager string `json:"service_manager,omitempty"`

	// Dates
	CommissioningDate string `json:"commissioning_date,omitempty"`
	ServiceDate       string `json:"service_date,omitempty"`

	// Network / DDAU details
	DDAUMAC         string `json:"ddau_mac,omitempty"`
	IPAddress       string `json:"ip_address,omitempty"`
	TurbineIP       string `json:"turbine_ip,omitempty"`
	Gateway         string `json:"gateway,omitempty"`
	ControllerType  string `json:"controller_type,omitempty"`
	DASServer       string `json:"das_server,omitempty"`
	SerialNumber    string `json:"serial_number,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`

	// Raw extracted text, kept for reference, never mapped.
	RawText string `json:"-"`
}

// Values returns the extracted fields keyed by their logical names, skipping
// empty values and the raw text.
func (r ReportData) Values() map[string]string {
	all := map[string]string{
		"wind_farm":          r.WindFarm,
		"turbine_number":     r.TurbineNumber,
		"turbine_type":       r.TurbineType,
		"location":           r.Location,
		"service_life_year":  r.ServiceLifeYear,
		"technicians":        r.Technicians,
		"service_manager":    r.ServiceManager,
		"commissioning_date": r.CommissioningDate,
		"service_date":       r.ServiceDate,
		"ddau_mac":           r.DDAUMAC,
		"ip_address":         r.IPAddress,
		"turbine_ip":         r.TurbineIP,
		"gateway":            r.Gateway,
		"controller_type":    r.ControllerType,
		"das_server":         r.DASServer,
		"serial_number":      r.SerialNumber,
		"firmware_version":   r.FirmwareVersion,
	}
	values := make(map[string]string, len(all))
	for k, v := range all {
		if v != "" {
			values[k] = v
		}
	}
	return values
}

// FieldMap maps logical CMS field names to the AcroForm field names of the
// SIF template. Update the right-hand side when the template revision changes
// field names; `doccheck fields` lists them.
var FieldMap = map[string]string{
	"wind_farm":         "Wind farm number",
	"turbine_number":    "Wind turbine number",
	"turbine_type":      "Wind turbine type_2",
	"location":          "Site location",
	"service_life_year": "Service life year",

	"technicians":     "Service technician 1",
	"service_manager": "Service manager",

	"commissioning_date": "DateRow1",
	"service_date":       "Date",

	"ddau_mac":        "MAC address DDAU",
	"ip_address":      "IP address DDAU",
	"turbine_ip":      "IP address of the wind turbine",
	"gateway":         "Gateway",
	"controller_type": "Controller type",
	"das_server":      "DAS Server",

	"serial_number":    "Serial number",
	"firmware_version": "Firmware version",
}

// SIFFieldValues applies mapping to the extracted data, producing AcroForm
// field values ready for filling. A nil mapping uses FieldMap.
func SIFFieldValues(data ReportData, mapping map[string]string) map[string]string {
	if mapping == nil {
		mapping = FieldMap
	}
	values := data.Values()
	out := make(map[string]string, len(mapping))
	for logical, sifField := range mapping {
		if v, ok := values[logical]; ok {
			out[sifField] = v
		}
	}
	return out
}
