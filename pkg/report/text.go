package report

import (
	"fmt"
	"strings"

	"github.com/turnlog/turnlog/pkg/turnaround"
)

// GenerateText renders a turnaround report as the shift-handover text block
// the ground crew paste into their messaging group
func GenerateText(report turnaround.TurnaroundReport, pairings FlightPairings) string {
	inboundFlight := pairings.InboundFor(report.FlightNumber)

	text := fmt.Sprintf(`🚀 *Datos Básicos*:
*Fecha de vuelo:* %s
*Origen:* %s
*Destino:* %s
*Número de vuelo:* %s

⏰ *Tiempos:*
*STD:* %s
*ATD:* %s
*Groomers In:* %s
*Groomers Out:* %s
*Crew at Gate:* %s
*OK to Board:* %s
*Flight Secure:* %s
*Cierre de Puerta:* %s
*Push Back:* %s

📋 *Información de Customs:*
*Customs In:* %s
*Customs Out:* %s

👥 *Información de Pasajeros:*
*Total Pax:* %d
*PAX C:* %d
*PAX Y:* %d
*Infantes:* %d

⏳ *Información por Demoras:*
*Delay:* %d
*Delay Code:* %s

♿ *Silla de ruedas:*
*Sillas Vuelo Llegada (%s):* %d
*Agentes Vuelo Llegada (%s):* %d
*Sillas Vuelo Salida (%s):* %d
*Agentes Vuelo Salida (%s):* %d

📍 *Información de Gate y Carrusel:*
*Gate:* %s
*Carrousel:* %s

🧳 *Información de Gate Bag:*
*Gate Bag:* %s

💬 *Comentarios:*
%s`,
		report.FlightDate,
		report.Origin,
		report.Destination,
		report.FlightNumber,
		report.STD,
		report.ATD,
		report.GroomersIn,
		report.GroomersOut,
		report.CrewAtGate,
		report.OkToBoard,
		report.FlightSecure,
		report.CierreDePuerta,
		report.PushBack,
		report.CustomsIn,
		report.CustomsOut,
		report.PaxTotal,
		report.PaxC,
		report.PaxY,
		report.Infants,
		report.DelayMinutes,
		report.DelayCode,
		inboundFlight, report.WheelchairsArrival,
		inboundFlight, report.AgentsArrival,
		report.FlightNumber, report.WheelchairsDeparture,
		report.FlightNumber, report.AgentsDeparture,
		report.Gate,
		report.Carrousel,
		report.GateBag,
		report.Comments,
	)

	return strings.TrimSpace(text)
}
