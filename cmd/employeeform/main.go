// Консольный клиент формы добавления сотрудника.
package main

func main() {
	Execute()
}
