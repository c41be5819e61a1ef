package ports

type StringValuesPort interface {
	LoadStrings(resDir string, system bool) error
	Value(id int32) (string, bool)
	ValueByName(reference string) (string, bool)
}
