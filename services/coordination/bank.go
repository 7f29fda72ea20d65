package coordination

import "github.com/MazaSebastian/crop-crm-sub000/models"

// questionBank maps every event type to its authored question set. Authoring
// order is meaningful (entrance song is asked before the toast song) and is
// preserved exactly; nothing here is ever re-sorted.
var questionBank = map[models.EventType][]models.CoordinationQuestion{
	models.EventCasamiento: {
		{ID: "cancion_entrada", Question: "¿Qué canción quieren para la entrada al salón?", Type: models.QuestionText, Required: true, Order: 1, Category: "musica"},
		{ID: "cancion_vals", Question: "¿Qué canción quieren para el vals?", Type: models.QuestionText, Required: true, Order: 2, Category: "musica"},
		{ID: "cancion_brindis", Question: "¿Qué canción quieren para el brindis?", Type: models.QuestionText, Required: false, Order: 3, Category: "musica"},
		{ID: "generos_fiesta", Question: "¿Qué géneros musicales no pueden faltar en la fiesta?", Type: models.QuestionCheckbox, Options: []string{"Cumbia", "Cuarteto", "Reggaetón", "Pop", "Rock Nacional", "Electrónica"}, Required: true, Order: 4, Category: "musica"},
		{ID: "hora_finalizacion", Question: "¿A qué hora está prevista la finalización del evento?", Type: models.QuestionTime, Required: true, Order: 5, Category: "logistica"},
	},
	models.EventCumpleanos: {
		{ID: "cancion_entrada", Question: "¿Qué canción quieren para la entrada del agasajado?", Type: models.QuestionText, Required: true, Order: 1, Category: "musica"},
		{ID: "momento_torta", Question: "¿Qué canción quieren para el momento de la torta?", Type: models.QuestionText, Required: false, Order: 2, Category: "musica"},
		{ID: "generos_fiesta", Question: "¿Qué géneros musicales no pueden faltar en la fiesta?", Type: models.QuestionCheckbox, Options: []string{"Cumbia", "Cuarteto", "Reggaetón", "Pop", "Rock Nacional", "Electrónica"}, Required: true, Order: 3, Category: "musica"},
		{ID: "invitados_mayores", Question: "¿Cuántos invitados mayores de 60 años habrá?", Type: models.QuestionNumber, Required: false, Order: 4, Category: "logistica"},
	},
	models.EventCorporativo: {
		{ID: "tipo_evento", Question: "¿Qué tipo de evento corporativo es?", Type: models.QuestionSelect, Options: []string{"Lanzamiento", "Fin de año", "Aniversario", "Congreso"}, Required: true, Order: 1, Category: "general"},
		{ID: "discursos", Question: "¿Habrá discursos o presentaciones con micrófono?", Type: models.QuestionRadio, Options: []string{"Sí", "No"}, Required: true, Order: 2, Category: "logistica"},
		{ID: "hora_finalizacion", Question: "¿A qué hora está prevista la finalización del evento?", Type: models.QuestionTime, Required: true, Order: 3, Category: "logistica"},
	},
	models.EventXV: {
		{ID: "cancion_entrada", Question: "¿Qué canción quiere la quinceañera para su entrada?", Type: models.QuestionText, Required: true, Order: 1, Category: "musica"},
		{ID: "cancion_vals", Question: "¿Qué canción quieren para el vals?", Type: models.QuestionText, Required: true, Order: 2, Category: "musica"},
		{ID: "ceremonia_velas", Question: "¿Van a realizar la ceremonia de las 15 velas?", Type: models.QuestionRadio, Options: []string{"Sí", "No"}, Required: true, Order: 3, Category: "protocolo"},
		{ID: "generos_fiesta", Question: "¿Qué géneros musicales no pueden faltar en la fiesta?", Type: models.QuestionCheckbox, Options: []string{"Cumbia", "Cuarteto", "Reggaetón", "Pop", "Rock Nacional", "Electrónica"}, Required: true, Order: 4, Category: "musica"},
		{ID: "sorpresas", Question: "Contanos si hay sorpresas planeadas durante la fiesta", Type: models.QuestionTextarea, Required: false, Order: 5, Category: "protocolo"},
	},
	models.EventGraduacion: {
		{ID: "institucion", Question: "¿De qué institución es la graduación?", Type: models.QuestionText, Required: true, Order: 1, Category: "general"},
		{ID: "entrega_diplomas", Question: "¿Habrá entrega de diplomas durante el evento?", Type: models.QuestionRadio, Options: []string{"Sí", "No"}, Required: true, Order: 2, Category: "protocolo"},
		{ID: "generos_fiesta", Question: "¿Qué géneros musicales no pueden faltar en la fiesta?", Type: models.QuestionCheckbox, Options: []string{"Cumbia", "Cuarteto", "Reggaetón", "Pop", "Rock Nacional", "Electrónica"}, Required: true, Order: 3, Category: "musica"},
	},
	models.EventOtro: {
		{ID: "descripcion_evento", Question: "Contanos de qué se trata el evento", Type: models.QuestionTextarea, Required: true, Order: 1, Category: "general"},
		{ID: "momentos_clave", Question: "¿Qué momentos clave tenemos que coordinar?", Type: models.QuestionTextarea, Required: false, Order: 2, Category: "general"},
	},
}

// QuestionsForEventType returns the authored question set for an event type.
// Unknown event types yield an empty list rather than an error.
func QuestionsForEventType(eventType models.EventType) []models.CoordinationQuestion {
	qs, ok := questionBank[eventType]
	if !ok {
		return nil
	}
	out := make([]models.CoordinationQuestion, len(qs))
	copy(out, qs)
	return out
}
