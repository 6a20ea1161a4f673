package bot

// Pass-scoring weights per strategy. Positive means "want to pass", negative
// means "want to keep". The magnitudes encode each personality's priorities
// and are not meant to be comparable across strategies.

var halTuning = struct {
	LowHeartKeep   int // hearts 2..5 stay as duck cards
	PeppaDump      int
	HighHeartBase  int // plus the card value
	SpadeHonorDump int // A/K of spades
	HighCardFactor int // times the card value
	ShortSuitBonus int // suit held with <= 2 cards
}{
	LowHeartKeep:   -500,
	PeppaDump:      1000,
	HighHeartBase:  500,
	SpadeHonorDump: 400,
	HighCardFactor: 10,
	ShortSuitBonus: 50,
}

var gemTuning = struct {
	PeppaUnprotected int // < 4 spades and no A/K cover
	PeppaProtected   int
	SpadeHonorKeep   int // holding the queen, A/K protect it
	SpadeHonorDump   int // without the queen they only attract it
	HighHeartFactor  int // times the card value, hearts J and up
	MoneyHonorKeep   int // A/K of clubs/diamonds
	MidCardDump      int // 7..10 control nothing
	ParachuteKeep    int // 2..3 duck cards
}{
	PeppaUnprotected: 10000,
	PeppaProtected:   500,
	SpadeHonorKeep:   -1000,
	SpadeHonorDump:   200,
	HighHeartFactor:  20,
	MoneyHonorKeep:   -2000,
	MidCardDump:      100,
	ParachuteKeep:    -500,
}

var gpt52Tuning = struct {
	LowDuckKeep       int // 2..4 are never passed lightly
	MoneyHonorKeep    int
	PeppaKeepCappotto int // sweeping means capturing her yourself
	PeppaDump         int
	HeartKeepCappotto int
	HeartDumpBase     int // plus HeartDumpFactor * value
	HeartDumpFactor   int
	TrapDump          int // 7..J
	ShortSuitDump     int // voiding enables later penalty sluffs
	ShortSuitHighDump int // extra when the short-suit card is Q or above
	SpadeHonorTrap    int // A/K spades with <= 2 spades held
	SpadeHonorKeep    int
	CappottoTrapDump  int // under cappotto, mids are still expendable
	CappottoLongKeep  int // do not dismantle the long suit
}{
	LowDuckKeep:       -300,
	MoneyHonorKeep:    -260,
	PeppaKeepCappotto: -120,
	PeppaDump:         900,
	HeartKeepCappotto: -80,
	HeartDumpBase:     120,
	HeartDumpFactor:   18,
	TrapDump:          120,
	ShortSuitDump:     90,
	ShortSuitHighDump: 60,
	SpadeHonorTrap:    80,
	SpadeHonorKeep:    -40,
	CappottoTrapDump:  40,
	CappottoLongKeep:  -40,
}

// gemTakeThreshold is the minimum net trick value GEM contests for.
const gemTakeThreshold = 8

// GPT52 contests for less as the round progresses and taking gets riskier.
const (
	gpt52TakeThresholdEarly = 8
	gpt52TakeThresholdLate  = 6
	gpt52HighRisk           = 0.6
	gpt52LowRisk            = 0.35
)
