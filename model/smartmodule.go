package model

type SmartModuleSpec struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Wasm        []byte `json:"wasm"`
}

type CreateSmartModuleRequest struct {
	Spec *SmartModuleSpec `json:"spec"`
}

type CreateSmartModuleReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type DeleteSmartModuleRequest struct {
	Name string `json:"name"`
}

type DeleteSmartModuleReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ListSmartModulesRequest struct{}

type ListSmartModulesReply struct {
	Modules []SmartModuleSpec `json:"modules"`
	Error   string            `json:"error"`
}

type DescribeSmartModuleRequest struct {
	Name string `json:"name"`
}

type DescribeSmartModuleReply struct {
	Spec  *SmartModuleSpec `json:"spec"`
	Error string           `json:"error"`
}

type UpdateSmartModuleRequest struct {
	Spec *SmartModuleSpec `json:"spec"`
}

type UpdateSmartModuleReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
