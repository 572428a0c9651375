// Package message holds the categorized motivational message pools and the
// selection logic that picks one variant for a given action and streak.
// Templates carry {streak}, {habit_name} and {user_name} placeholders.
package message

// Success is the general pool for a completed habit.
var Success = []string{
	"💪 ¡Excelente! Otro sapo devorado. Tu racha: {streak} días.",
	"🔥 ¡Brutal! {streak} días seguidos. Estás en el top 5% de emprendedores.",
	"🏆 ¡Victoria! '{habit_name}' completado. Racha actual: {streak} días.",
	"⚡ ¡Imparable! {streak} días sin procrastinar. Eso es disciplina real.",
	"🎯 ¡Boom! Otro día ganado. Llevas {streak} días de pura ejecución.",
	"🐸 Sapo eliminado. Tu récord de consistencia: {streak} días.",
	"💎 Día {streak} en la bolsa. Los resultados están llegando.",
}

// Milestones maps exact streak values to their celebration pools. A streak
// that equals a key bypasses the general success pool.
var Milestones = map[int][]string{
	3: {
		"🔥 ¡3 DÍAS! Estás creando un nuevo hábito. La ciencia dice que necesitas 21, pero ya arrancaste.",
		"⚡ ¡Tercer día consecutivo! El momentum está de tu lado.",
	},
	7: {
		"🏆 ¡UNA SEMANA COMPLETA! Eres oficialmente más disciplinado que el 90% de la gente.",
		"💪 7 días. Una semana de pura ejecución. Esto ya no es suerte, es carácter.",
	},
	15: {
		"🔥 ¡15 DÍAS! Medio mes sin procrastinar. Tu cerebro ya está reprogramándose.",
		"💎 Dos semanas y media. Los hábitos se están solidificando. ¡No pares!",
	},
	30: {
		"🏆🏆🏆 ¡UN MES COMPLETO! Eres una máquina de ejecución. Esto es transformación real.",
		"⭐ 30 días. Has demostrado que la disciplina vence al talento. Eres imparable.",
	},
	60: {
		"👑 ¡60 DÍAS! Dos meses de consistencia absoluta. Eres un outlier estadístico.",
	},
	90: {
		"🚀 ¡90 DÍAS! Tres meses. Has reconfigurado tu identidad. Eres ejecutor, no solo soñador.",
	},
}

// Nudge pools for proactive reminders, bucketed by streak magnitude.
var (
	NudgeLowStreak = []string{
		"🐸 El sapo no se va a comer solo. ¿Listo para ganar el día?",
		"⏰ Tu tarea más importante te espera: '{habit_name}'. Un paso a la vez.",
		"🎯 Hoy es el día. '{habit_name}' no se hará sola. ¿Empezamos?",
	}
	NudgeMidStreak = []string{
		"🔥 {streak} días y contando. No rompas la cadena. Tu sapo te espera: '{habit_name}'",
		"💪 Llevas {streak} días. Hoy es otro ladrillo en tu imperio. ¿Confirmas victoria?",
		"⚡ Racha de {streak}. El momentum es tuyo. Tarea del día: '{habit_name}'",
	}
	NudgeHighStreak = []string{
		"🏆 {streak} días de disciplina. Hoy no es diferente. '{habit_name}' te espera.",
		"👑 Eres imparable con {streak} días. ¿Listo para otro más?",
		"🔥 TOP PERFORMER: {streak} días. El sapo de hoy: '{habit_name}'. Demuestra quién manda.",
	}
)

// Delay is the pool for a postponed habit.
var Delay = []string{
	"⏳ Entendido. Te recuerdo en 15 minutos. Pero recuerda: el sapo no se hace más pequeño.",
	"👀 Ok, pospuesto. Pero ojo: procrastinar hoy es robarle al Carlos del mañana.",
	"⏰ Te doy 15 minutos más. Pero después... ¡sin excusas!",
}

// Skip is the pool for a skipped day.
var Skip = []string{
	"📝 Anotado. Mañana es una nueva oportunidad. No te rindas.",
	"💪 Día difícil, lo entiendo. Pero mañana volvemos con todo.",
	"🔄 Sin problema. Recuerda: un mal día no borra una buena racha.",
}

// Default is the fallback prompt used whenever selection cannot complete.
const Default = "🐸 ¡Es hora de actuar! Responde 1 para confirmar, 2 para posponer, 3 para saltar."

// Frog reminder variants for priority habits; these bypass the pool system.
const (
	FrogHighStreak = "🔥 *EAT THE FROG* 🔥\n\n👑 Llevas {streak} días siendo imparable.\n\nTu misión crítica: *{habit_name}*\n\nNo hay excusas. Responde:\n1️⃣ Ya lo hice\n2️⃣ 15 min más\n3️⃣ Hoy no puedo"
	FrogLowStreak  = "🔥 *EAT THE FROG* 🔥\n\nTu tarea más crítica del día:\n*{habit_name}*\n\nNo procrastines. Hazlo AHORA.\n\n1️⃣ Ya lo hice\n2️⃣ Posponer 15 min\n3️⃣ Hoy no puedo"
)

// ReplyOptions is appended to every non-frog reminder.
const ReplyOptions = "\n\n1️⃣ Listo\n2️⃣ Después\n3️⃣ Hoy no"

// FallbackReminder is sent when a reminder cannot be rendered normally.
const FallbackReminder = "🐸 *¡HORA DE ACTUAR!*\n\nMeta: *{habit_name}*\n\n1️⃣ Ya lo hice\n2️⃣ Posponer\n3️⃣ Hoy no puedo"
