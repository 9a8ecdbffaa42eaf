package domain

// Dongho квартира: дом (동) + номер (호)
type Dongho struct {
	ID       int64
	Dong     string
	Ho       string
	UnitType *string
}

// MoveUnit данные квартиры, подтвержденные логином move-потока
type MoveUnit struct {
	DonghoID        int64
	Dong            string
	Ho              string
	ContractorName  string
	ContractorPhone string
	UnitType        *string
}
