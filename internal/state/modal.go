package state

// ModalKind names the modal or editor currently shown over the dashboard.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalWater
	ModalSleep
	ModalSteps
	ModalPlaylist
	ModalIncome
	ModalExpense
	ModalGoals
	ModalSavingsGoal
	ModalInvestment
	ModalNote
	ModalTodo
	ModalChecklist
	ModalTransactionDetail
)

// ModalKinds lists every kind except ModalNone.
var ModalKinds = []ModalKind{
	ModalWater,
	ModalSleep,
	ModalSteps,
	ModalPlaylist,
	ModalIncome,
	ModalExpense,
	ModalGoals,
	ModalSavingsGoal,
	ModalInvestment,
	ModalNote,
	ModalTodo,
	ModalChecklist,
	ModalTransactionDetail,
}

var modalNames = map[ModalKind]string{
	ModalNone:              "none",
	ModalWater:             "water",
	ModalSleep:             "sleep",
	ModalSteps:             "steps",
	ModalPlaylist:          "playlist",
	ModalIncome:            "income",
	ModalExpense:           "expense",
	ModalGoals:             "goals",
	ModalSavingsGoal:       "savings-goal",
	ModalInvestment:        "investment",
	ModalNote:              "note",
	ModalTodo:              "todo",
	ModalChecklist:         "checklist",
	ModalTransactionDetail: "transaction-detail",
}

func (k ModalKind) String() string {
	if name, ok := modalNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsEntityEditor reports whether the kind edits a collection entity.
func (k ModalKind) IsEntityEditor() bool {
	return k == ModalNote || k == ModalTodo || k == ModalChecklist
}

// ActiveModal is the single open modal, if any. EntityID is the entity being
// edited by a note, todo or checklist editor, empty when creating new.
type ActiveModal struct {
	Kind     ModalKind
	EntityID string
}

// IsOpen reports whether any modal is open.
func (m ActiveModal) IsOpen() bool {
	return m.Kind != ModalNone
}

// Flags projects the active modal onto one flag per modal.
func (m ActiveModal) Flags() ModalFlags {
	var f ModalFlags
	f.Set(m.Kind, true)
	return f
}

// ModalFlags holds one "show" flag per modal or editor.
type ModalFlags struct {
	WaterEditor       bool
	SleepEditor       bool
	StepsEditor       bool
	Playlist          bool
	IncomeModal       bool
	ExpenseModal      bool
	GoalsModal        bool
	SavingsGoalModal  bool
	InvestmentModal   bool
	NoteModal         bool
	TodoModal         bool
	ChecklistModal    bool
	TransactionDetail bool
}

// Any reports whether at least one flag is set.
func (f ModalFlags) Any() bool {
	return f.WaterEditor ||
		f.SleepEditor ||
		f.StepsEditor ||
		f.Playlist ||
		f.IncomeModal ||
		f.ExpenseModal ||
		f.GoalsModal ||
		f.SavingsGoalModal ||
		f.InvestmentModal ||
		f.NoteModal ||
		f.TodoModal ||
		f.ChecklistModal ||
		f.TransactionDetail
}

// Set sets the flag for kind. ModalNone is ignored.
func (f *ModalFlags) Set(kind ModalKind, v bool) {
	switch kind {
	case ModalWater:
		f.WaterEditor = v
	case ModalSleep:
		f.SleepEditor = v
	case ModalSteps:
		f.StepsEditor = v
	case ModalPlaylist:
		f.Playlist = v
	case ModalIncome:
		f.IncomeModal = v
	case ModalExpense:
		f.ExpenseModal = v
	case ModalGoals:
		f.GoalsModal = v
	case ModalSavingsGoal:
		f.SavingsGoalModal = v
	case ModalInvestment:
		f.InvestmentModal = v
	case ModalNote:
		f.NoteModal = v
	case ModalTodo:
		f.TodoModal = v
	case ModalChecklist:
		f.ChecklistModal = v
	case ModalTransactionDetail:
		f.TransactionDetail = v
	}
}
