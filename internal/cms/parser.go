package cms

import (
	"regexp"
	"strings"
)

// Label-based extraction patterns. CMS reports are free-form text, so these
// are heuristics: each pattern captures the value following a known label.
var (
	reWindFarm       = regexp.MustCompile(`(?i)(?:Wind\s*Farm|WF|Farm\s*Name)[:\s]+([^\n]+)`)
	reTurbineNumber  = regexp.MustCompile(`(?i)(?:Turbine\s*Number|WTG|Wind\s*Turbine)[:\s#]*([A-Z0-9\-]+)`)
	reTurbineType    = regexp.MustCompile(`(?i)(?:Turbine\s*Type|Model|Type)[:\s]+([^\n]+)`)
	reLocation       = regexp.MustCompile(`(?i)(?:Location|Site|Address)[:\s]+([^\n]+)`)
	reServiceYear    = regexp.MustCompile(`(?i)(?:Service\s*Life\s*Year|SLY|Year)[:\s]+(\d{4})`)
	reTechnician     = regexp.MustCompile(`(?i)(?:Technician|Tech)[:\s]*([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	reTechnicianAny  = regexp.MustCompile(`(?i)(?:Technician|Service\s*Tech)[:\s]+([^\n]+)`)
	reServiceManager = regexp.MustCompile(`(?i)(?:Service\s*Manager|Manager|Supervisor)[:\s]+([^\n]+)`)
	reCommissionDate = regexp.MustCompile(`(?i)(?:Commissioning\s*Date|Commission\s*Date)[:\s]+([0-9\/\-\.]+)`)
	reServiceDate    = regexp.MustCompile(`(?i)(?:Service\s*Date|Inspection\s*Date|Date)[:\s]+([0-9\/\-\.]+)`)
	reMAC            = regexp.MustCompile(`(?i)(?:MAC\s*Address|DDAU\s*MAC|MAC)[:\s]+([A-Fa-f0-9:]+)`)
	reIP             = regexp.MustCompile(`(?i)(?:IP\s*Address|IP)[:\s]+(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})`)
	reGateway        = regexp.MustCompile(`(?i)(?:Default\s*Gateway|Gateway)[:\s]+(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})`)
	reController     = regexp.MustCompile(`(?i)(?:Controller\s*Type|Controller)[:\s]+([^\n]+)`)
	reDASServer      = regexp.MustCompile(`(?i)(?:DAS\s*Server|Server)[:\s]+([^\n]+)`)
	reSerialNumber   = regexp.MustCompile(`(?i)(?:Serial\s*Number|S/N|Serial)[:\s]+([A-Z0-9\-]+)`)
	reFirmware       = regexp.MustCompile(`(?i)(?:Firmware\s*Version|FW\s*Version|Firmware)[:\s]+([0-9\.]+)`)
	reNameField      = regexp.MustCompile(`(?im)Name[:\s]+([^\n]+)`)
	reNumberField    = regexp.MustCompile(`(?im)Number[:\s]+([^\n]+)`)
)

func find(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func findAll(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Parse extracts structured CMS report data from raw text. Missing fields stay
// empty; nothing here is an error because reports vary widely in layout.
func Parse(text string) ReportData {
	data := ReportData{
		WindFarm:          find(reWindFarm, text),
		TurbineNumber:     find(reTurbineNumber, text),
		TurbineType:       find(reTurbineType, text),
		Location:          find(reLocation, text),
		ServiceLifeYear:   find(reServiceYear, text),
		ServiceManager:    find(reServiceManager, text),
		CommissioningDate: find(reCommissionDate, text),
		ServiceDate:       find(reServiceDate, text),
		DDAUMAC:           find(reMAC, text),
		IPAddress:         find(reIP, text),
		Gateway:           find(reGateway, text),
		ControllerType:    find(reController, text),
		DASServer:         find(reDASServer, text),
		SerialNumber:      find(reSerialNumber, text),
		FirmwareVersion:   find(reFirmware, text),
		RawText:           text,
	}

	if techs := findAll(reTechnician, text); len(techs) > 0 {
		data.Technicians = strings.Join(techs, ", ")
	} else {
		data.Technicians = find(reTechnicianAny, text)
	}

	// Generic "Name"/"Number" lines often carry the turbine and farm numbers
	// when the labelled variants are absent.
	if data.TurbineNumber == "" {
		data.TurbineNumber = find(reNameField, text)
	}
	if data.WindFarm == "" {
		data.WindFarm = find(reNumberField, text)
	}

	data.TurbineIP = data.IPAddress

	return data
}
