package notstruct

//ifacelink:impl SimpleIf
type NotAStruct int
